package embedgen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrStale is returned by Check when a generated file does not match what
// Render would produce.
var ErrStale = errors.New("generated file is stale")

// Check compares the generated file at path with a fresh rendering of r. A
// missing file counts as stale, as does one rendered from a different source,
// kind or package.
func (g Generator) Check(path string, r Resource) error {
	existing, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w: file does not exist", path, ErrStale)
	}
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}
	if !bytes.HasPrefix(existing, []byte(Header+"\n")) {
		return fmt.Errorf("check %s: not generated by embedgen", path)
	}

	want, err := g.Render(r)
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}
	if bytes.Equal(existing, want) {
		return nil
	}

	if digestLine(existing) != DigestLine(r.Data) {
		return fmt.Errorf("%s: %w: source %s changed", path, ErrStale, r.Source)
	}
	return fmt.Errorf("%s: %w: generator settings changed", path, ErrStale)
}

func digestLine(src []byte) string {
	for _, line := range strings.Split(string(src), "\n") {
		if strings.HasPrefix(line, digestPrefix) {
			return line
		}
		if !strings.HasPrefix(line, "//") {
			break
		}
	}
	return ""
}
