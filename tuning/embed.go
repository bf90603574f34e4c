package tuning

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var TuningFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load returns the named tuning file, preferring an on-disk copy under
// tuning/ so edits take effect without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanTuningPath(name)
	if data, err := os.ReadFile(diskTuningPath(clean)); err == nil {
		return data, nil
	}
	return TuningFS.ReadFile(clean)
}

// LoadScript returns the named layout script, preferring the on-disk copy.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("tuning", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func cleanTuningPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "tuning/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "tuning/scripts/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "tuning/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskTuningPath(clean string) string {
	return filepath.Join("tuning", filepath.FromSlash(clean))
}
