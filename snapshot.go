package humanid

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/dmitrymomot/humanid/pkg/wordlist"
)

// SnapshotVersion is the current snapshot schema version.
const SnapshotVersion = 1

// Snapshot is the serialized state of a Manager.
type Snapshot struct {
	Version    int            `json:"version"`
	Seed       int64          `json:"seed"`
	Dictionary DictionaryInfo `json:"dictionary"`
	Counters   map[string]int `json:"counters"`
	Forward    []Entry        `json:"forward"`
	Backward   []Entry        `json:"backward"`
}

// DictionaryInfo identifies the dictionary a snapshot was produced with.
type DictionaryInfo struct {
	Size     int    `json:"size"`
	Checksum string `json:"checksum"`
}

// MatchesDictionary reports whether dict is the dictionary the snapshot was
// taken with. Restoring under a different dictionary succeeds, but new
// identifiers will no longer match those a manager over the old one would generate.
func (s *Snapshot) MatchesDictionary(dict *wordlist.Dictionary) bool {
	return dict != nil && s.Dictionary.Size == dict.Len() && s.Dictionary.Checksum == dict.Checksum()
}

// Snapshot captures the complete manager state.
func (m *Manager) Snapshot() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := &Snapshot{
		Version: SnapshotVersion,
		Seed:    m.seed,
		Dictionary: DictionaryInfo{
			Size:     m.dict.Len(),
			Checksum: m.dict.Checksum(),
		},
		Counters: maps.Clone(m.counters),
		Forward:  make([]Entry, 0, len(m.forward)),
		Backward: make([]Entry, 0, len(m.backward)),
	}
	for id, h := range m.forward {
		s.Forward = append(s.Forward, Entry{Original: id, HumanReadable: h})
	}
	for h, id := range m.backward {
		s.Backward = append(s.Backward, Entry{Original: id, HumanReadable: h})
	}

	slices.SortFunc(s.Forward, func(a, b Entry) int {
		if c := cmp.Compare(a.Original.kind, b.Original.kind); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Original.num, b.Original.num); c != 0 {
			return c
		}
		return cmp.Compare(a.Original.text, b.Original.text)
	})
	slices.SortFunc(s.Backward, func(a, b Entry) int {
		return cmp.Compare(a.HumanReadable, b.HumanReadable)
	})
	return s
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m *Manager) MarshalBinary() ([]byte, error) {
	return json.Marshal(m.Snapshot())
}

// DecodeSnapshot parses a blob produced by MarshalBinary.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeserialization, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after snapshot", ErrDeserialization)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrDeserialization, s.Version)
	}
	return &s, nil
}

// Restore rebuilds a manager from a blob produced by MarshalBinary.
func Restore(dict *wordlist.Dictionary, data []byte) (*Manager, error) {
	s, err := DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	return FromSnapshot(dict, s)
}

// FromSnapshot rebuilds a manager from s after checking that its maps are
// exact inverses and its counters agree with the registered identifiers.
func FromSnapshot(dict *wordlist.Dictionary, s *Snapshot) (*Manager, error) {
	if dict == nil {
		return nil, ErrNilDictionary
	}
	if s == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrDeserialization)
	}
	if len(s.Forward) != len(s.Backward) {
		return nil, fmt.Errorf("%w: forward has %d entries, backward has %d",
			ErrDeserialization, len(s.Forward), len(s.Backward))
	}

	m := New(dict, WithSeed(s.Seed))

	pairs := make(map[string]int, len(s.Counters))
	for _, e := range s.Forward {
		if e.Original.IsZero() {
			return nil, fmt.Errorf("%w: empty original identifier", ErrDeserialization)
		}
		if _, dup := m.forward[e.Original]; dup {
			return nil, fmt.Errorf("%w: duplicate original %q", ErrDeserialization, e.Original)
		}
		pair, ok := pairOf(e.HumanReadable)
		if !ok {
			return nil, fmt.Errorf("%w: malformed identifier %q", ErrDeserialization, e.HumanReadable)
		}
		m.forward[e.Original] = e.HumanReadable
		pairs[pair]++
	}

	for _, e := range s.Backward {
		if _, dup := m.backward[e.HumanReadable]; dup {
			return nil, fmt.Errorf("%w: duplicate identifier %q", ErrDeserialization, e.HumanReadable)
		}
		if h, ok := m.forward[e.Original]; !ok || h != e.HumanReadable {
			return nil, fmt.Errorf("%w: %q is not the inverse of a forward entry", ErrDeserialization, e.HumanReadable)
		}
		m.backward[e.HumanReadable] = e.Original
	}

	if len(s.Counters) != len(pairs) {
		return nil, fmt.Errorf("%w: %d counters for %d word pairs", ErrDeserialization, len(s.Counters), len(pairs))
	}
	for pair, n := range pairs {
		counter, ok := s.Counters[pair]
		if !ok || counter != n-1 {
			return nil, fmt.Errorf("%w: counter for %q does not match %d registrations", ErrDeserialization, pair, n)
		}
		m.counters[pair] = counter
	}

	return m, nil
}
