// Package validation binds request input into payload structs and
// turns validator tag failures into the field errors returned to the
// admin panel.
package validation
