package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// findLatestReport returns the newest earlier report for rosterName, if any.
func findLatestReport(appRoot, rosterName string) (string, bool, error) {
	dir := filepath.Join(appRoot, "output", "loadout_roster")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}

	wantSuffix := fmt.Sprintf("_loadout_roster_%s.xlsx", rosterName)

	candidates := make([]string, 0, 8)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		// Keep it strict: only our expected naming convention.
		if !strings.HasSuffix(name, wantSuffix) || len(name) != 8+len(wantSuffix) {
			continue
		}
		candidates = append(candidates, filepath.Join(dir, name))
	}
	if len(candidates) == 0 {
		return "", false, nil
	}

	// Pick the newest by filename (YYYYMMDD prefix makes lexicographic sort usable).
	sort.Strings(candidates)
	return candidates[len(candidates)-1], true, nil
}
