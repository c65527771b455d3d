package testresources

import _ "embed"

//go:embed text_data.txt
var textData string

// TextData returns the embedded text resource.
func TextData() string {
	return textData
}
