package humanid

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/humanid/pkg/wordlist"
)

// Option configures a Manager.
type Option func(*Manager)

// WithSeed perturbs the hash so the same original identifier maps to a
// different human-readable identifier. A zero seed is the same as no seed.
func WithSeed(seed int64) Option {
	return func(m *Manager) { m.seed = seed }
}

// Manager assigns human-readable identifiers to original identifiers and keeps
// the two-way registry. It is safe for concurrent use.
type Manager struct {
	dict *wordlist.Dictionary
	seed int64

	mu       sync.RWMutex
	counters map[string]int
	forward  map[OriginalID]string
	backward map[string]OriginalID
}

// Entry is one registration.
type Entry struct {
	Original      OriginalID `json:"original"`
	HumanReadable string     `json:"human_readable"`
}

// New creates an empty manager over dict. It panics if dict is nil.
func New(dict *wordlist.Dictionary, opts ...Option) *Manager {
	if dict == nil {
		panic(ErrNilDictionary)
	}
	m := &Manager{
		dict:     dict,
		counters: make(map[string]int),
		forward:  make(map[OriginalID]string),
		backward: make(map[string]OriginalID),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Seed returns the seed fixed at construction.
func (m *Manager) Seed() int64 { return m.seed }

// Dictionary returns the dictionary the manager indexes into.
func (m *Manager) Dictionary() *wordlist.Dictionary { return m.dict }

// Generate returns the human-readable identifier for id, assigning a new one
// on first use. Repeated calls return the same value without changing state.
func (m *Manager) Generate(id OriginalID) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generate(id)
}

// GenerateBatch generates identifiers for ids in order under a single lock.
func (m *Manager) GenerateBatch(ids []OriginalID) []string {
	out := make([]string, len(ids))
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, id := range ids {
		out[i] = m.generate(id)
	}
	return out
}

func (m *Manager) generate(id OriginalID) string {
	if h, ok := m.forward[id]; ok {
		return h
	}

	index1, index2, number := split(Hash32(id.hashInput(m.seed)), m.dict.Len())
	pair := m.dict.Word(index1) + "-" + m.dict.Word(index2)

	// An unseen pair starts at -1 so its first user gets offset 0.
	counter, ok := m.counters[pair]
	if !ok {
		counter = -1
	}
	counter++
	m.counters[pair] = counter
	number += uint64(counter)

	h := pair + "-" + strconv.FormatUint(number, 10)
	m.forward[id] = h
	m.backward[h] = id
	return h
}

// HumanReadable returns the identifier registered for id.
func (m *Manager) HumanReadable(id OriginalID) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.forward[id]
	return h, ok
}

// HumanReadableOr returns the identifier registered for id, or def.
func (m *Manager) HumanReadableOr(id OriginalID, def string) string {
	if h, ok := m.HumanReadable(id); ok {
		return h
	}
	return def
}

// Original returns the original identifier behind h.
func (m *Manager) Original(h string) (OriginalID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.backward[h]
	return id, ok
}

// OriginalOr returns the original identifier behind h, or def.
func (m *Manager) OriginalOr(h string, def OriginalID) OriginalID {
	if id, ok := m.Original(h); ok {
		return id
	}
	return def
}

// HasHumanReadable reports whether h has been assigned.
func (m *Manager) HasHumanReadable(h string) bool {
	_, ok := m.Original(h)
	return ok
}

// HasOriginal reports whether id has been registered.
func (m *Manager) HasOriginal(id OriginalID) bool {
	_, ok := m.HumanReadable(id)
	return ok
}

// Len returns the number of registered original identifiers.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.forward)
}

// Entries returns all registrations sorted by human-readable identifier.
func (m *Manager) Entries() []Entry {
	m.mu.RLock()
	out := make([]Entry, 0, len(m.forward))
	for id, h := range m.forward {
		out = append(out, Entry{Original: id, HumanReadable: h})
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b Entry) int {
		return cmp.Compare(a.HumanReadable, b.HumanReadable)
	})
	return out
}

// pairOf strips the numeric suffix from a human-readable identifier.
func pairOf(h string) (string, bool) {
	i := strings.LastIndexByte(h, '-')
	if i <= 0 || i == len(h)-1 {
		return "", false
	}
	if _, err := strconv.ParseUint(h[i+1:], 10, 64); err != nil {
		return "", false
	}
	return h[:i], true
}
