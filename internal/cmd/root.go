package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/humanid/internal/app"
)

const (
	groupIdentifiers = "identifiers"
	groupServer      = "server"
)

// storeFlags override the environment configuration for a single run.
type storeFlags struct {
	store      string
	dataDir    string
	key        string
	dictionary string
	seed       int64
}

func (f *storeFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.store, "store", "", "Snapshot store: memory, file, s3, redis, postgres, mongo (env HUMANID_STORE)")
	fs.StringVar(&f.dataDir, "data-dir", "", "Base directory of the file store (env HUMANID_DATA_DIR)")
	fs.StringVar(&f.key, "key", "", "Snapshot key within the store (env HUMANID_SNAPSHOT_KEY)")
	fs.StringVar(&f.dictionary, "dictionary", "", "Word list file, embedded list when empty (env HUMANID_DICTIONARY)")
	fs.Int64Var(&f.seed, "seed", 0, "Seed for a new registry (env HUMANID_SEED)")
}

func (f *storeFlags) apply(fs *pflag.FlagSet, cfg *app.Config) {
	if fs.Changed("store") {
		cfg.Store = f.store
	}
	if fs.Changed("data-dir") {
		cfg.DataDir = f.dataDir
	}
	if fs.Changed("key") {
		cfg.SnapshotKey = f.key
	}
	if fs.Changed("dictionary") {
		cfg.Dictionary = f.dictionary
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
}

// runner opens the application for one command invocation and closes it
// afterwards, flushing unsaved registrations.
type runner struct {
	flags storeFlags
}

func (r *runner) run(fn func(ctx context.Context, cmd *cobra.Command, a *app.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}
		r.flags.apply(cmd.Flags(), &cfg)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		a, err := app.New(ctx, cfg, app.NewLogger(cfg))
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, a.Close(context.WithoutCancel(ctx)))
		}()

		return fn(ctx, cmd, a, args)
	}
}

// NewRootCmd creates the humanid command tree.
func NewRootCmd() *cobra.Command {
	r := &runner{}

	rootCmd := &cobra.Command{
		Use:   "humanid",
		Short: "humanid - stable human-readable names for identifiers",
		Long: `humanid maps identifiers (text, integers, bytes, UUIDs) to memorable names
such as "apple-banana-7" and back. Registrations are stored as a snapshot in
the configured store so names stay stable across runs.

Configuration is read from the environment (and a .env file); the store
flags below override it for a single command.`,
		SilenceUsage: true,
	}
	r.flags.register(rootCmd.PersistentFlags())

	rootCmd.AddGroup(
		&cobra.Group{ID: groupIdentifiers, Title: "Identifier Commands"},
		&cobra.Group{ID: groupServer, Title: "Server Commands"},
	)

	for _, c := range []*cobra.Command{
		newGenerateCmd(r),
		newResolveCmd(r),
		newLookupCmd(r),
		newExportCmd(r),
		newStatsCmd(r),
	} {
		c.GroupID = groupIdentifiers
		rootCmd.AddCommand(c)
	}

	serveCmd := newServeCmd(r)
	serveCmd.GroupID = groupServer
	rootCmd.AddCommand(serveCmd)

	return rootCmd
}
