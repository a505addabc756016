// Package content is the HTTP trigger surface of the content sync.
//
// # Routes
//
//   - POST /api/build-data: runs a sync (API key).
//   - GET /api/revalidate?secret=: runs a sync when the revalidate secret matches.
//   - POST /api/contentful/webhook: calls the deploy hook on publish events.
//   - GET /api/sync/runs: recent run history (API key, needs the database).
//
// Concurrent triggers are coalesced: a request arriving while a run is in flight waits
// for that run and receives its result instead of starting another.
//
// The subpackages hold the pipeline itself: models, resolve, variants, transform and sync.
package content
