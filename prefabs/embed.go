package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is searched before the embedded prefabs so edits on disk win.
var Dir = "prefabs"

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(name string) string {
	if name == "" {
		return ""
	}
	// Prefabs are stored flat, so only the file name matters.
	return path.Base(filepath.ToSlash(name))
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
