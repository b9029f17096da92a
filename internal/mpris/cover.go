package mpris

import (
	"os"
	"path/filepath"
)

// coverNames lists artwork base names in priority order.
var coverNames = []string{"cover", "folder", "front", "artwork"}

var coverExts = []string{".jpg", ".png", ".jpeg", ".webp"}

// FindCoverArt looks for artwork next to the audio file: first an image
// sharing the audio's base name, then the common cover names.
func FindCoverArt(audioPath string) string {
	dir := filepath.Dir(audioPath)
	base := filepath.Base(audioPath)
	base = base[:len(base)-len(filepath.Ext(base))]

	for _, name := range append([]string{base}, coverNames...) {
		for _, ext := range coverExts {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
