// Package lib groups supporting modules that do not belong to a single layer.
//
// It contains object storage, caching, background jobs (Asynq), email
// delivery (Resend), dependency monitoring and small shared helpers.
package lib
