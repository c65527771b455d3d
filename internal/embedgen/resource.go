// Package embedgen turns resource files into Go source that carries the file
// contents as literals behind a typed accessor.
package embedgen

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"
)

// Kind selects the accessor shape for a resource.
type Kind int

const (
	// Binary resources are exposed as []byte.
	Binary Kind = iota
	// Text resources are exposed as string.
	Text
)

func (k Kind) String() string {
	switch k {
	case Binary:
		return "binary"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "binary" or "text". An empty string means binary.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "binary", "bin":
		return Binary, nil
	case "text", "txt":
		return Text, nil
	default:
		return 0, fmt.Errorf("unknown resource kind %q", s)
	}
}

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidateName reports whether name can be turned into a Go identifier.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid resource name %q: must match %s", name, namePattern)
	}
	return nil
}

// Resource is a loaded resource file.
type Resource struct {
	Name   string
	Source string
	Kind   Kind
	Data   []byte
}

// Load reads the resource at path.
func Load(name, path string, kind Kind) (Resource, error) {
	if err := ValidateName(name); err != nil {
		return Resource{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Resource{}, fmt.Errorf("load resource %s: %w", name, err)
	}
	return Resource{Name: name, Source: path, Kind: kind, Data: data}, nil
}

// Accessor returns the exported accessor name, e.g. "binary_data" becomes
// "BinaryData".
func (r Resource) Accessor() string {
	var b strings.Builder
	for _, part := range strings.Split(r.Name, "_") {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// FileName returns the name of the generated Go file. The fixed suffix keeps
// names such as "icon_windows" or "fixture_test" from picking up build
// constraints.
func (r Resource) FileName() string {
	return strings.ToLower(r.Name) + "_embed.go"
}

// NameFromPath derives a resource name from a file path by taking the base
// name without extension and replacing anything that is not a letter or digit.
func NameFromPath(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	name := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, base)
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		name = "r_" + name
	}
	return name
}
