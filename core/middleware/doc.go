// Package middleware groups the Fiber middleware of the server.
//
//   - auth: rejects requests without the configured X-API-Key. An empty key disables the check.
//   - rayid: assigns every request a uuid ray id, echoed in the X-Ray-ID response header
//     and attached to request logs by logger.WithRayID.
package middleware
