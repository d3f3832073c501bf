// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package,
// calls the service layer, and wraps results in the JSON
// response envelope.
package handler
