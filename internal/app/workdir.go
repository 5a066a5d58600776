package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aurceive/loadout_roster/internal/cache"

	"gopkg.in/yaml.v3"
)

func ensureWorkDir(appRoot string) (string, error) {
	workDir := filepath.Join(appRoot, "work")
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return "", err
	}
	return workDir, nil
}

type cacheSnapshotFile struct {
	Computations int64         `yaml:"computations"`
	Entries      []cache.Entry `yaml:"entries"`
}

func writeCacheSnapshot(path string, c *cache.Cache) error {
	b, err := yaml.Marshal(cacheSnapshotFile{
		Computations: c.Computations(),
		Entries:      c.Snapshot(),
	})
	if err != nil {
		return fmt.Errorf("encode cache snapshot: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}
