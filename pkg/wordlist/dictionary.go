package wordlist

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

//go:embed words.tsv
var defaultSource []byte

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Dictionary is an ordered, immutable list of words.
type Dictionary struct {
	words    []string
	checksum string
}

// New builds a dictionary from the given words, preserving their order.
// The slice is copied. Empty dictionaries and words that are blank, contain
// whitespace or are not valid UTF-8 are rejected.
func New(words []string) (*Dictionary, error) {
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}

	list := make([]string, len(words))
	h := sha256.New()
	for i, w := range words {
		if w == "" || !utf8.ValidString(w) || strings.IndexFunc(w, unicode.IsSpace) >= 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidWord, w, i)
		}
		list[i] = w
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}

	return &Dictionary{
		words:    list,
		checksum: hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(words []string) *Dictionary {
	d, err := New(words)
	if err != nil {
		panic(fmt.Sprintf("wordlist: %v", err))
	}
	return d
}

// Parse reads a dictionary in the tab-separated source format. The first line
// is treated as a header; blank lines are ignored.
func Parse(r io.Reader) (*Dictionary, error) {
	sc := bufio.NewScanner(r)
	var words []string
	header := true
	for sc.Scan() {
		if header {
			header = false
			continue
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		words = append(words, strings.TrimSpace(fields[len(fields)-1]))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return New(words)
}

// Load reads and parses a dictionary file.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Default returns the embedded dictionary. It is parsed on first use and
// shared by every caller.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := Parse(bytes.NewReader(defaultSource))
		if err != nil {
			// The embedded list is part of the binary; failing here is a build defect.
			panic(fmt.Sprintf("wordlist: invalid embedded dictionary: %v", err))
		}
		defaultDict = d
	})
	return defaultDict
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Word returns the word at position i. It panics if i is out of range.
func (d *Dictionary) Word(i int) string { return d.words[i] }

// Words returns a copy of the word list.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Checksum returns a hex sha256 digest over the ordered words. Two dictionaries
// with equal checksums produce identical identifiers.
func (d *Dictionary) Checksum() string { return d.checksum }
