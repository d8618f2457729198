package humanid_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/humanid"
	"github.com/dmitrymomot/humanid/pkg/wordlist"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()
	dict := referenceDictionary(t)

	m := humanid.New(dict, humanid.WithSeed(42))
	for _, id := range originalIDs() {
		m.Generate(id)
	}
	colliding := collidingIDs(t)
	first := m.Generate(colliding[0])

	data, err := m.MarshalBinary()
	require.NoError(t, err)

	restored, err := humanid.Restore(dict, data)
	require.NoError(t, err)
	assert.Equal(t, int64(42), restored.Seed())
	assert.Equal(t, m.Len(), restored.Len())
	assert.Equal(t, m.Entries(), restored.Entries())

	again, err := restored.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, data, again)

	// The counter continues where the original instance stopped.
	assert.Equal(t, m.Generate(colliding[1]), restored.Generate(colliding[1]))
	assert.NotEqual(t, first, restored.Generate(colliding[1]))
	assert.Equal(t, m.Generate(humanid.Text("fresh")), restored.Generate(humanid.Text("fresh")))
}

func TestSnapshotInvalidUTF8Text(t *testing.T) {
	t.Parallel()
	dict := referenceDictionary(t)

	m := humanid.New(dict)
	ids := []humanid.OriginalID{humanid.Text("\xff"), humanid.Text("\xfe"), humanid.Text("ok")}
	names := m.GenerateBatch(ids)

	data, err := m.MarshalBinary()
	require.NoError(t, err)

	restored, err := humanid.Restore(dict, data)
	require.NoError(t, err)
	assert.Equal(t, m.Entries(), restored.Entries())
	for i, id := range ids {
		assert.True(t, restored.HasOriginal(id))
		h, ok := restored.HumanReadable(id)
		require.True(t, ok)
		assert.Equal(t, names[i], h)

		back, ok := restored.Original(names[i])
		require.True(t, ok)
		assert.Equal(t, id, back)
	}
	assert.Equal(t, names[0], restored.Generate(humanid.Text("\xff")))
	assert.False(t, restored.HasOriginal(humanid.Text("\uFFFD")))
}

func TestSnapshotCollisionContinuation(t *testing.T) {
	t.Parallel()
	dict := referenceDictionary(t)
	ids := collidingIDs(t)

	m := humanid.New(dict)
	require.Equal(t, "pasty-never-43", m.Generate(ids[0]))

	data, err := m.MarshalBinary()
	require.NoError(t, err)
	restored, err := humanid.Restore(dict, data)
	require.NoError(t, err)

	assert.Equal(t, "pasty-never-44", restored.Generate(ids[1]))
}

func TestSnapshotContents(t *testing.T) {
	t.Parallel()
	dict := referenceDictionary(t)
	m := filledManager(t)

	s := m.Snapshot()
	assert.Equal(t, humanid.SnapshotVersion, s.Version)
	assert.Equal(t, int64(0), s.Seed)
	assert.Len(t, s.Forward, 6)
	assert.Len(t, s.Backward, 6)
	assert.Equal(t, 0, s.Counters["blustery-judo"])
	assert.True(t, s.MatchesDictionary(dict))
	assert.False(t, s.MatchesDictionary(wordlist.Default()))
	assert.False(t, s.MatchesDictionary(nil))
}

func TestRestoreWithDifferentDictionary(t *testing.T) {
	t.Parallel()
	m := filledManager(t)
	data, err := m.MarshalBinary()
	require.NoError(t, err)

	restored, err := humanid.Restore(wordlist.Default(), data)
	require.NoError(t, err)
	assert.Equal(t, m.Len(), restored.Len())
	h, ok := restored.HumanReadable(humanid.Text("id0"))
	require.True(t, ok)
	assert.Equal(t, "blustery-judo-28", h)
}

func TestRestoreRejectsCorruptData(t *testing.T) {
	t.Parallel()
	dict := referenceDictionary(t)

	valid := func(t *testing.T) map[string]any {
		t.Helper()
		m := humanid.New(dict)
		ids := collidingIDs(t)
		m.Generate(ids[0])
		m.Generate(ids[1])
		m.Generate(humanid.Text("id0"))
		data, err := m.MarshalBinary()
		require.NoError(t, err)
		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		return raw
	}

	tests := []struct {
		name   string
		mutate func(raw map[string]any)
	}{
		{"unknown version", func(raw map[string]any) { raw["version"] = 99 }},
		{"missing version", func(raw map[string]any) { delete(raw, "version") }},
		{"backward shorter", func(raw map[string]any) {
			raw["backward"] = raw["backward"].([]any)[1:]
		}},
		{"backward not inverse", func(raw map[string]any) {
			b := raw["backward"].([]any)
			e := b[0].(map[string]any)
			e["human_readable"] = "other-pair-1"
		}},
		{"duplicate forward", func(raw map[string]any) {
			f := raw["forward"].([]any)
			f[1] = f[0]
		}},
		{"malformed identifier", func(raw map[string]any) {
			f := raw["forward"].([]any)
			f[0].(map[string]any)["human_readable"] = "nonumber"
		}},
		{"counter off by one", func(raw map[string]any) {
			raw["counters"].(map[string]any)["pasty-never"] = 0
		}},
		{"missing counter", func(raw map[string]any) {
			delete(raw["counters"].(map[string]any), "blustery-judo")
		}},
		{"extra counter", func(raw map[string]any) {
			raw["counters"].(map[string]any)["ghost-pair"] = 3
		}},
		{"unknown field", func(raw map[string]any) { raw["format"] = "other" }},
		{"unknown dictionary field", func(raw map[string]any) {
			raw["dictionary"].(map[string]any)["name"] = "eff"
		}},
		{"unknown entry field", func(raw map[string]any) {
			f := raw["forward"].([]any)
			f[0].(map[string]any)["extra"] = 1
		}},
		{"bad original", func(raw map[string]any) {
			f := raw["forward"].([]any)
			f[0].(map[string]any)["original"] = map[string]any{"type": "float", "value": 1}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := valid(t)
			tt.mutate(raw)
			data, err := json.Marshal(raw)
			require.NoError(t, err)

			m, err := humanid.Restore(dict, data)
			require.ErrorIs(t, err, humanid.ErrDeserialization)
			assert.Nil(t, m)
		})
	}

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"", "not json", `{"version":1}trailing`, `{"version":1}}`, `{"version":1}{}`, "[]"} {
			m, err := humanid.Restore(dict, []byte(in))
			assert.ErrorIs(t, err, humanid.ErrDeserialization, in)
			assert.Nil(t, m)
		}
	})

	t.Run("nil dictionary", func(t *testing.T) {
		t.Parallel()
		_, err := humanid.FromSnapshot(nil, &humanid.Snapshot{Version: 1})
		require.ErrorIs(t, err, humanid.ErrNilDictionary)
	})
}

func TestRestoreEmpty(t *testing.T) {
	t.Parallel()
	dict := referenceDictionary(t)

	data, err := humanid.New(dict, humanid.WithSeed(9)).MarshalBinary()
	require.NoError(t, err)

	m, err := humanid.Restore(dict, data)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, int64(9), m.Seed())
}
