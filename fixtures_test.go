package humanid_test

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/humanid"
	"github.com/dmitrymomot/humanid/pkg/wordlist"
)

// referenceWords places the words of the reference fixtures at the positions
// they occupy in the 7776-word list the golden values were produced with.
var referenceWords = map[int]string{
	// seed 0
	585: "blustery", 3507: "judo",
	4987: "pushchair", 2667: "font",
	6184: "spirits", 6155: "speech",
	6363: "stingily", 6877: "trimester",
	5066: "rake", 3502: "jubilant",
	7117: "unframed", 1692: "denial",
	// seed 42
	426: "backlog", 269: "applied",
	3378: "imperfect", 4311: "outreach",
	5545: "runway", 5171: "reference",
	3101: "handbook", 5554: "sacrament",
	2894: "glimmer", 3189: "hatless",
	1623: "deeply", 5884: "showing",
	// colliding pair
	4529: "pasty", 4137: "never",
}

func referenceDictionary(t testing.TB) *wordlist.Dictionary {
	t.Helper()
	words := make([]string, 7776)
	for i := range words {
		if w, ok := referenceWords[i]; ok {
			words[i] = w
			continue
		}
		words[i] = fmt.Sprintf("w%04d", i)
	}
	d, err := wordlist.New(words)
	require.NoError(t, err)
	return d
}

func originalIDs() []humanid.OriginalID {
	return []humanid.OriginalID{
		humanid.Text("id0"),
		humanid.Text("test_id"),
		humanid.Int(0),
		humanid.Int(1),
		humanid.Int(42),
		humanid.Bytes([]byte("test-bytes")),
	}
}

var humanReadableSeed0 = []string{
	"blustery-judo-28",
	"pushchair-font-4",
	"spirits-speech-54",
	"stingily-trimester-1",
	"rake-jubilant-49",
	"unframed-denial-13",
}

var humanReadableSeed42 = []string{
	"backlog-applied-30",
	"imperfect-outreach-61",
	"runway-reference-24",
	"handbook-sacrament-65",
	"glimmer-hatless-8",
	"deeply-showing-19",
}

// collidingIDs are two distinct 128-byte blocks with the same MD5 digest.
func collidingIDs(t testing.TB) []humanid.OriginalID {
	t.Helper()
	blocks := []string{
		"d131dd02c5e6eec4693d9a0698aff95c2fcab58712467eab4004583eb8fb7f8955ad340609f4b30283e488832571415a085125e8f7cdc99fd91dbdf280373c5bd8823e3156348f5bae6dacd436c919c6dd53e2b487da03fd02396306d248cda0e99f33420f577ee8ce54b67080a80d1ec69821bcb6a8839396f9652b6ff72a70",
		"d131dd02c5e6eec4693d9a0698aff95c2fcab50712467eab4004583eb8fb7f8955ad340609f4b30283e4888325f1415a085125e8f7cdc99fd91dbd7280373c5bd8823e3156348f5bae6dacd436c919c6dd53e23487da03fd02396306d248cda0e99f33420f577ee8ce54b67080280d1ec69821bcb6a8839396f965ab6ff72a70",
	}
	ids := make([]humanid.OriginalID, len(blocks))
	for i, s := range blocks {
		b, err := hex.DecodeString(s)
		require.NoError(t, err)
		require.Len(t, b, 128)
		ids[i] = humanid.Bytes(b)
	}
	return ids
}

func filledManager(t testing.TB) *humanid.Manager {
	t.Helper()
	m := humanid.New(referenceDictionary(t))
	for _, id := range originalIDs() {
		m.Generate(id)
	}
	return m
}
