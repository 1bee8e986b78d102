package tuning

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var tuningFS embed.FS

// Load reads a tuning file, preferring the on-disk copy under tuning/ so
// edits take effect without rebuilding, falling back to the embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanTuningPath(name)
	if data, err := os.ReadFile(diskTuningPath(clean)); err == nil {
		return data, nil
	}
	return tuningFS.ReadFile(clean)
}

// ModTime reports the on-disk modification time, if a disk copy exists.
func ModTime(name string) (time.Time, bool) {
	clean := cleanTuningPath(name)
	info, err := os.Stat(diskTuningPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanTuningPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "tuning/") {
		return strings.TrimPrefix(s, "tuning/")
	}
	return s
}

func diskTuningPath(clean string) string {
	return filepath.Join("tuning", filepath.FromSlash(clean))
}
