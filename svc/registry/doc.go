// Package registry keeps a humanid.Manager in sync with a snapshot Store.
//
// Open restores the manager from the snapshot stored under a key, or starts
// empty. Every new registration is written back to the store unless autosave
// is disabled, in which case Flush persists pending changes.
//
//	store, _ := file.NewLocalStorage("./data")
//	reg, err := registry.Open(ctx, store, wordlist.Default(),
//	    registry.WithSeed(42),
//	    registry.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	h, err := reg.Generate(ctx, humanid.Text("order-1001"))
//
// Any type with Load and Save methods works as a Store: the file, redis, pg
// and mongo packages all provide one, and MemoryStore serves tests and
// ephemeral use.
package registry
