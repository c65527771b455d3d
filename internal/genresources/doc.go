// Package genresources holds the test resources as Go source produced by
// embedgen, the generated counterpart of package testresources.
package genresources

//go:generate go run ../../cmd/embedgen generate --config embedgen.yaml
