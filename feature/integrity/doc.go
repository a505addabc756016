// Package integrity verifies the persisted snapshot.
//
// # Checks Provided
//
//   - Snapshot: every category document exists in the snapshot directory and parses as a
//     JSON array; reports record counts and modification times.
//   - Published: when publishing is on, every category object exists under the bucket
//     prefix; reports sizes and modification times.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/snapshot : Checks the local documents.
//   - GET /integrity/published : Checks the bucket copies (503 when publishing is off).
package integrity
