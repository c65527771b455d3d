// Package testresources exposes a binary and a text resource compiled into the
// program image.
package testresources

import (
	_ "embed"

	"github.com/joestump/embedres/internal/resource"
)

//go:embed binary_data.bin
var binaryData string

// BinaryData returns a read-only view over the embedded binary resource.
func BinaryData() resource.ByteView {
	return resource.Of(binaryData)
}
