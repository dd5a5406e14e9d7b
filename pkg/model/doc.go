// Package model provides the services through which the rest of the
// application reads and mutates slices of the store.
package model
