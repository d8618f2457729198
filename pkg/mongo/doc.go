// Package mongo stores identifier snapshots in MongoDB.
//
// New connects with retries using an environment-driven Config. SnapshotStore
// keeps one document per snapshot key:
//
//	{_id: <key>, data: <binary>, updated_at: <date>}
//
// and writes it with an upserting ReplaceOne, so saving is idempotent.
//
// # Usage
//
//	client, coll, err := mongo.NewCollection(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Disconnect(context.Background())
//
//	store := mongo.NewSnapshotStore(coll)
//	data, err := store.Load(ctx, "default")
//
//	health := mongo.Healthcheck(client)
//
// Connection and storage failures are sentinel errors joined with the driver
// error, so errors.Is works for both.
package mongo
