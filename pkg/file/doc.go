// Package file stores snapshot blobs on the local filesystem or in Amazon S3
// (and S3-compatible services such as MinIO).
//
// Both backends expose the same small surface:
//
//	Load(ctx, path) ([]byte, error)   // nil, nil when the object does not exist
//	Save(ctx, path, data) error
//	Delete(ctx, path) error
//	Exists(ctx, path) bool
//
// LocalStorage confines every path to its base directory and replaces files
// atomically (write to a temp file, then rename), so a crash never leaves a
// half-written snapshot behind.
//
//	store, err := file.NewLocalStorage("./data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = store.Save(ctx, "humanid.snapshot.json", blob)
//
// S3Storage goes through the S3Client interface, which *s3.Client satisfies;
// tests can inject a mock with WithS3Client.
//
//	store, err := file.NewS3Storage(ctx, file.S3Config{
//	    Bucket: "ids",
//	    Region: "eu-central-1",
//	})
//
// S3 failures are mapped to sentinel errors (ErrAccessDenied,
// ErrBucketNotFound, ErrOperationTimeout, ...) that can be checked with errors.Is.
package file
