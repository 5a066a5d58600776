package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = "loadout_config.yaml"

func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findRootFrom(cwd)
}

// findRootFrom supports running from the repo root or from cmd/*.
func findRootFrom(start string) (string, error) {
	dir := start
	for i := 0; i < 10; i++ {
		probe := filepath.Join(dir, configFileName)
		if _, err := os.Stat(probe); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("cannot find app root from %q (expected to find %s in this dir or any parent)", start, configFileName)
}
