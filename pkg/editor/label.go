package editor

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// languageLabel resolves a display name for the language implied by a file
// path, for tagging syntax errors whose source did not name one.
func languageLabel(path string) string {
	if lang, _ := enry.GetLanguageByExtension(filepath.Base(path)); lang != "" {
		return lang
	}
	return "Unknown"
}
