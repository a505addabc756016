// Package sync is the content sync orchestrator.
//
// A run fetches products, tours, donations and posts concurrently, joins on all four
// (or the first failure), transforms each payload and persists the four snapshot
// documents, again concurrently. The run is all-or-nothing: a failed fetch aborts it
// before any document is written. There is no retry and no state carried between runs.
//
// Optional collaborators:
//   - publishers receive the same documents after the local write (object storage).
//   - a Recorder keeps one history row per run, including failed ones.
//
// # Usage
//
//	syncer := sync.New(client, cfg.Contentful.ContentTypes, snapshot.NewFileWriter("data"),
//	    sync.WithLogger(logger))
//	result, err := syncer.Run(ctx)
package sync
