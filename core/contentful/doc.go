// Package contentful is the entry fetcher for the upstream content delivery API.
//
// A Client issues one GET per content type against
// {base}/spaces/{space}/environments/{environment}/entries with a bearer token and
// returns the raw Payload: the entries and the assets included alongside them.
//
// # Errors
//
//   - ConfigError: the space id or delivery token is missing. NewClient returns it,
//     so no request is ever made without credentials.
//   - FetchError: the API answered with a non-success status. It carries the status
//     code and the raw body. Callers do not retry; a failed fetch aborts the sync run.
//
// # Usage
//
//	client, err := contentful.NewClient(cfg.Contentful)
//	payload, err := client.Fetch(ctx, contentful.Query{ContentType: "blog", Include: 2})
package contentful
