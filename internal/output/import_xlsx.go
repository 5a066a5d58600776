package output

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/aurceive/loadout_roster/internal/domain"

	"github.com/xuri/excelize/v2"
)

func parseIntCell(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}
	// Spreadsheet apps sometimes store whole numbers as "3.0" or "3,0".
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != float64(int(v)) {
		return 0, false
	}
	return int(v), true
}

func parseBoolCell(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return false, true
	case "true", "yes", "y", "1", "x":
		return true, true
	case "false", "no", "n", "0":
		return false, true
	}
	return false, false
}

// ImportRosterXLSX reads unit specs from the "Roster" sheet (or the first sheet when there is none).
// Columns are matched by header name, so their order does not matter.
func ImportRosterXLSX(path string) ([]domain.UnitSpec, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheet := SheetRoster
	if idx, _ := f.GetSheetIndex(sheet); idx == -1 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("xlsx %q: no sheets", filepath.Base(path))
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		if _, dup := cols[h]; dup {
			return nil, fmt.Errorf("%s: duplicate column %q", sheet, h)
		}
		cols[h] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("%s: missing column \"name\"", sheet)
	}
	for h := range cols {
		if slices.Contains(rosterColumns, h) {
			continue
		}
		if _, err := domain.ParseSlot(h); err != nil {
			return nil, fmt.Errorf("%s: unknown column %q", sheet, h)
		}
	}

	out := make([]domain.UnitSpec, 0, len(rows)-1)
	for r, row := range rows[1:] {
		rowNum := r + 2
		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		name := get("name")
		if name == "" {
			// Blank separator rows are allowed.
			continue
		}
		u := domain.UnitSpec{
			Name:      name,
			Culture:   get("culture"),
			TroopType: get("troop_type"),
		}

		ints := []struct {
			col string
			dst *int
		}{
			{"tier", &u.Tier},
			{"skill_value", &u.SkillValue},
			{"equipment_value", &u.EquipmentValue},
			{"level", &u.Level},
			{"count", &u.Count},
		}
		for _, c := range ints {
			s := get(c.col)
			if s == "" {
				continue
			}
			v, ok := parseIntCell(s)
			if !ok {
				return nil, fmt.Errorf("%s row %d: %s: invalid integer %q", sheet, rowNum, c.col, s)
			}
			*c.dst = v
		}

		bools := []struct {
			col string
			dst *bool
		}{
			{"ranged", &u.Ranged},
			{"mounted", &u.Mounted},
		}
		for _, c := range bools {
			v, ok := parseBoolCell(get(c.col))
			if !ok {
				return nil, fmt.Errorf("%s row %d: %s: invalid boolean %q", sheet, rowNum, c.col, get(c.col))
			}
			*c.dst = v
		}

		for _, slot := range domain.EquipmentSlots {
			if id := get(slot.String()); id != "" {
				if u.Equipment == nil {
					u.Equipment = make(map[string]string)
				}
				u.Equipment[slot.String()] = id
			}
		}
		out = append(out, u)
	}
	return out, nil
}
