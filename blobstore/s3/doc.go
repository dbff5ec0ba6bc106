// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("octree-dumps/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	exporter := dump.NewExporter(store)
//	_, err = exporter.Export(ctx, tree, "scene-1")
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Multipart uploads for large dumps
//   - CRC32C checksums on every upload
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
