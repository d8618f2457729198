// Package humanid maps opaque identifiers to short, memorable, reversible
// identifiers such as "blustery-judo-28".
//
// A Manager turns any original identifier (text, integer, or raw bytes) into
// two dictionary words and a number. The mapping is deterministic for a given
// dictionary and seed, idempotent for a given manager, and collision free
// within one manager: every assigned identifier maps back to exactly one
// original identifier.
//
// # Algorithm
//
// The original identifier is rendered to bytes ("{value}{seed}" for text and
// integers, raw bytes followed by the decimal seed for byte identifiers; a zero
// seed adds nothing) and hashed with MD5. The 128-bit digest is folded to 64
// and then 32 bits by XORing its halves. The 32-bit hash h is split as a
// base-N number over a dictionary of N words:
//
//	index1 = h % N
//	index2 = (h / N) % N
//	number = h / N / N
//
// Each word pair keeps a counter. The K-th identifier that lands on a pair
// (K = 0, 1, 2, ...) gets number+K, so two originals with the same hash still
// receive different identifiers, in the order they were first generated.
//
// # Usage
//
//	m := humanid.New(wordlist.Default(), humanid.WithSeed(42))
//
//	h := m.Generate(humanid.Text("order:9f2c1e"))   // e.g. "brave-otter-117"
//	id, ok := m.Original(h)                          // Text("order:9f2c1e"), true
//
// Persist and restore the full state:
//
//	data, err := m.MarshalBinary()
//	...
//	m, err = humanid.Restore(wordlist.Default(), data)
//	if errors.Is(err, humanid.ErrDeserialization) {
//	    // corrupted or foreign blob
//	}
//
// Restoring under a different dictionary is allowed; existing registrations are
// kept but new identifiers will differ from those the old dictionary would
// produce. Use Snapshot.MatchesDictionary to detect it.
//
// # Concurrency
//
// All Manager methods are safe for concurrent use. Generate holds a single
// lock across the existence check and the counter update.
//
// The hash is not meant to resist adversarial collisions, and uniqueness holds
// only within one manager's state.
package humanid
