// Package errs defines the error types returned to API clients.
//
// Every failure leaves the API as an HTTPError so the website and the
// admin panel can rely on one JSON error shape, optionally carrying
// field-level validation errors and an action hint.
package errs
