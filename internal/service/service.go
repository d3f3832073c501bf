// Package service holds the business rules of the website backend.
//
// Services sit between the handlers and the repositories. They own
// authentication, upload checks, cache invalidation after content
// writes, and best-effort cleanup of stored files.
package service
