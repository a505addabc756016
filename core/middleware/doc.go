// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: API key validation for the operator endpoints. Routes with their own
//     credentials (revalidate secret, webhook topic) are skipped via Config.Next.
//   - RayID: assigns every request a ray id, stored in Locals and echoed in the
//     X-Ray-ID response header for tracing.
package middleware
