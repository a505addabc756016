// Package snapshot persists the normalized content snapshot.
//
// Every category is one pretty-printed JSON array. FileWriter replaces each file
// atomically through a temp file and rename, so readers never observe a partial
// document. BucketWriter publishes the same bytes to object storage.
//
// # Usage
//
//	data, err := snapshot.Encode(records)
//	err = snapshot.NewFileWriter("data").Write(ctx, "products", data)
package snapshot
