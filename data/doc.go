// Package data holds the default settings shipped with the converters.
// Assets is generated from the files in this directory; build with the
// dev tag to read them from disk instead.
package data

//go:generate go run -tags=dev assets_generate.go
