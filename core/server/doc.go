// Package server holds the HTTP trigger server configuration.
//
// Config carries the listen port, the operator API key, and the credentials of the
// public trigger routes: the revalidate secret, the webhook secret and the deploy hook
// called after webhook-driven rebuilds.
package server
