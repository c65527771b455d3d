// Command embedcheck verifies that the embedded test resources hold their
// expected contents. It exits silently on success and panics on mismatch.
package main

import (
	"fmt"

	"github.com/joestump/embedres/internal/resource"
	"github.com/joestump/embedres/internal/testresources"
)

const expected = "Hello world"

func main() {
	if err := verify(testresources.BinaryData(), testresources.TextData()); err != nil {
		panic(err)
	}
}

func verify(binary resource.ByteView, text string) error {
	if !binary.Equal([]byte(expected)) {
		return fmt.Errorf("binary resource mismatch: got % x, want % x", binary.String(), expected)
	}
	if text != expected {
		return fmt.Errorf("text resource mismatch: got %q, want %q", text, expected)
	}
	return nil
}
