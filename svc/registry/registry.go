package registry

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/humanid"
	"github.com/dmitrymomot/humanid/pkg/logger"
	"github.com/dmitrymomot/humanid/pkg/wordlist"
)

// DefaultKey is the snapshot key used when WithKey is not given.
const DefaultKey = "humanid.snapshot.json"

// Registry is a humanid.Manager whose state survives restarts.
// Writes are serialized so snapshots are persisted in registration order;
// reads go straight to the manager.
type Registry struct {
	mu       sync.Mutex
	mgr      *humanid.Manager
	store    Store
	key      string
	autosave bool
	dirty    bool
	log      *slog.Logger
}

// Stats summarizes a registry.
type Stats struct {
	Count          int   `json:"count" yaml:"count"`
	Seed           int64 `json:"seed" yaml:"seed"`
	DictionarySize int   `json:"dictionary_size" yaml:"dictionary_size"`
	Unsaved        bool  `json:"unsaved" yaml:"unsaved"`
}

type options struct {
	key      string
	seed     int64
	autosave bool
	log      *slog.Logger
}

// Option configures Open.
type Option func(*options)

// WithKey sets the snapshot key inside the store.
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

// WithSeed sets the seed for a registry created from scratch. A stored
// snapshot keeps its own seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithoutAutosave stops Generate from persisting; call Flush instead.
func WithoutAutosave() Option {
	return func(o *options) { o.autosave = false }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Open loads the snapshot stored under the configured key, or starts an
// empty registry when there is none.
func Open(ctx context.Context, store Store, dict *wordlist.Dictionary, opts ...Option) (*Registry, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if dict == nil {
		return nil, humanid.ErrNilDictionary
	}

	o := options{key: DefaultKey, autosave: true, log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log.With(logger.Component("registry"), logger.SnapshotKey(o.key))

	data, err := store.Load(ctx, o.key)
	if err != nil {
		return nil, errors.Join(ErrLoadSnapshot, err)
	}

	var mgr *humanid.Manager
	if data == nil {
		mgr = humanid.New(dict, humanid.WithSeed(o.seed))
		log.InfoContext(ctx, "no snapshot found, starting empty", slog.Int64("seed", o.seed))
	} else {
		snap, err := humanid.DecodeSnapshot(data)
		if err != nil {
			return nil, errors.Join(ErrRestoreSnapshot, err)
		}
		if !snap.MatchesDictionary(dict) {
			log.WarnContext(ctx, "snapshot was taken with a different dictionary",
				slog.Int("snapshot_dictionary_size", snap.Dictionary.Size),
				slog.Int("dictionary_size", dict.Len()),
			)
		}
		if o.seed != 0 && o.seed != snap.Seed {
			log.WarnContext(ctx, "configured seed differs from stored seed, keeping stored seed",
				slog.Int64("seed", o.seed),
				slog.Int64("stored_seed", snap.Seed),
			)
		}
		if mgr, err = humanid.FromSnapshot(dict, snap); err != nil {
			return nil, errors.Join(ErrRestoreSnapshot, err)
		}
		log.InfoContext(ctx, "snapshot restored", logger.Count(mgr.Len()), slog.Int64("seed", mgr.Seed()))
	}

	return &Registry{
		mgr:      mgr,
		store:    store,
		key:      o.key,
		autosave: o.autosave,
		log:      log,
	}, nil
}

// Generate returns the identifier for id, registering it if needed.
// New registrations are persisted when autosave is on; if that fails the
// identifier is still returned, together with an error wrapping
// ErrSaveSnapshot, and the registry stays unsaved.
func (r *Registry) Generate(ctx context.Context, id humanid.OriginalID) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.mgr.HumanReadable(id); ok {
		return h, nil
	}
	h := r.mgr.Generate(id)
	r.dirty = true
	r.log.DebugContext(ctx, "registered identifier", logger.Original(id), logger.HumanReadable(h))

	if !r.autosave {
		return h, nil
	}
	return h, r.persist(ctx)
}

// GenerateBatch registers ids in order and persists once.
func (r *Registry) GenerateBatch(ctx context.Context, ids []humanid.OriginalID) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := r.mgr.Len()
	out := r.mgr.GenerateBatch(ids)
	added := r.mgr.Len() - before
	if added == 0 {
		return out, nil
	}
	r.dirty = true
	r.log.DebugContext(ctx, "registered identifiers", logger.Count(added))

	if !r.autosave {
		return out, nil
	}
	return out, r.persist(ctx)
}

// Flush persists unsaved registrations.
func (r *Registry) Flush(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.dirty {
		return nil
	}
	return r.persist(ctx)
}

// Close flushes the registry. The store is owned by the caller.
func (r *Registry) Close(ctx context.Context) error {
	return r.Flush(ctx)
}

func (r *Registry) persist(ctx context.Context) error {
	data, err := r.mgr.MarshalBinary()
	if err != nil {
		return errors.Join(ErrSaveSnapshot, err)
	}
	if err := r.store.Save(ctx, r.key, data); err != nil {
		r.log.ErrorContext(ctx, "failed to save snapshot", logger.Error(err))
		return errors.Join(ErrSaveSnapshot, err)
	}
	r.dirty = false
	return nil
}

// HumanReadable returns the identifier registered for id.
func (r *Registry) HumanReadable(id humanid.OriginalID) (string, bool) {
	return r.mgr.HumanReadable(id)
}

// Original returns the original registered under h.
func (r *Registry) Original(h string) (humanid.OriginalID, bool) {
	return r.mgr.Original(h)
}

// Len returns the number of registrations.
func (r *Registry) Len() int { return r.mgr.Len() }

// Entries returns all registrations sorted by human-readable identifier.
func (r *Registry) Entries() []humanid.Entry { return r.mgr.Entries() }

// Seed returns the seed in effect.
func (r *Registry) Seed() int64 { return r.mgr.Seed() }

// Manager exposes the underlying manager.
func (r *Registry) Manager() *humanid.Manager { return r.mgr }

// Stats returns counts and settings.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	dirty := r.dirty
	r.mu.Unlock()

	return Stats{
		Count:          r.mgr.Len(),
		Seed:           r.mgr.Seed(),
		DictionarySize: r.mgr.Dictionary().Len(),
		Unsaved:        dirty,
	}
}
