package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aurceive/loadout_roster/internal/assignment"
	"github.com/aurceive/loadout_roster/internal/cache"
	"github.com/aurceive/loadout_roster/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	SheetLoadouts = "Loadouts"
	SheetRoster   = "Roster"
	SheetCache    = "Cache"
)

// rosterColumns is the fixed part of a roster sheet header; slot columns follow.
var rosterColumns = []string{"name", "tier", "culture", "troop_type", "ranged", "mounted", "skill_value", "equipment_value", "level", "count"}

func colName(n int) string {
	// 1-indexed: 1 -> A, 26 -> Z, 27 -> AA
	if n <= 0 {
		return ""
	}
	out := ""
	for n > 0 {
		n--
		out = string(rune('A'+(n%26))) + out
		n /= 26
	}
	return out
}

func cell(col, row int) string {
	return fmt.Sprintf("%s%d", colName(col), row)
}

func itemName(it *domain.Item) string {
	if it == nil {
		return ""
	}
	if it.Name != "" {
		return it.Name
	}
	return it.ID
}

// Report is everything written to a loadout workbook.
type Report struct {
	// Records in serving order.
	Records []*assignment.Record
	Units   []domain.UnitSpec
	Cache   []cache.Entry
}

// ExportLoadoutsXLSX writes the report to output/loadout_roster under appRoot and returns the file path.
func ExportLoadoutsXLSX(appRoot string, rosterName string, rep Report) (string, error) {
	dir := filepath.Join(appRoot, "output", "loadout_roster")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	// yearmonthday
	timestamp := time.Now().Format("20060102")
	filename := filepath.Join(dir, fmt.Sprintf("%s_loadout_roster_%s.xlsx", timestamp, rosterName))
	if err := WriteReportXLSX(filename, rep); err != nil {
		return "", err
	}
	return filename, nil
}

func WriteReportXLSX(path string, rep Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetLoadouts); err != nil {
		return err
	}
	if err := writeLoadouts(f, rep.Records); err != nil {
		return fmt.Errorf("write %s sheet: %w", SheetLoadouts, err)
	}
	if len(rep.Units) > 0 {
		if _, err := f.NewSheet(SheetRoster); err != nil {
			return err
		}
		if err := writeRoster(f, SheetRoster, rep.Units); err != nil {
			return fmt.Errorf("write %s sheet: %w", SheetRoster, err)
		}
	}
	if len(rep.Cache) > 0 {
		if _, err := f.NewSheet(SheetCache); err != nil {
			return err
		}
		if err := writeCache(f, rep.Cache); err != nil {
			return fmt.Errorf("write %s sheet: %w", SheetCache, err)
		}
	}
	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

// ExportRosterXLSX writes a workbook with a single roster sheet that ImportRosterXLSX can read back.
func ExportRosterXLSX(path string, units []domain.UnitSpec) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetRoster); err != nil {
		return err
	}
	if err := writeRoster(f, SheetRoster, units); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func headerStyle(f *excelize.File, sheet string, lastCol int) error {
	styleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", cell(lastCol, 1), styleID); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func writeLoadouts(f *excelize.File, records []*assignment.Record) error {
	sheet := SheetLoadouts
	headers := []string{"Order", "Record", "Unit", "Tier", "Culture", "Troop Type", "Ranged", "Mounted"}
	for _, slot := range domain.EquipmentSlots {
		headers = append(headers, slot.String())
	}
	for i, h := range headers {
		f.SetCellValue(sheet, cell(i+1, 1), h)
	}
	if err := headerStyle(f, sheet, len(headers)); err != nil {
		return err
	}

	// Slots that changed against the reference loadout are highlighted.
	changedID, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E2EFDA"}},
	})
	if err != nil {
		return err
	}

	for i, r := range records {
		row := i + 2
		ch := r.Character()
		f.SetCellValue(sheet, cell(1, row), i+1)
		f.SetCellValue(sheet, cell(2, row), r.Index())
		f.SetCellValue(sheet, cell(3, row), ch.Name())
		f.SetCellValue(sheet, cell(4, row), ch.Tier())
		f.SetCellValue(sheet, cell(5, row), string(ch.Culture()))
		f.SetCellValue(sheet, cell(6, row), ch.TroopType().String())
		f.SetCellValue(sheet, cell(7, row), ch.IsRanged())
		f.SetCellValue(sheet, cell(8, row), ch.IsMounted())

		eq := r.Equipment()
		ref := r.Reference()
		for j, slot := range domain.EquipmentSlots {
			col := 9 + j
			it := eq.Get(slot).Item
			if it == nil {
				continue
			}
			f.SetCellValue(sheet, cell(col, row), itemName(it))
			if ref.Get(slot).Item != it {
				if err := f.SetCellStyle(sheet, cell(col, row), cell(col, row), changedID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeRoster(f *excelize.File, sheet string, units []domain.UnitSpec) error {
	headers := append([]string(nil), rosterColumns...)
	for _, slot := range domain.EquipmentSlots {
		headers = append(headers, slot.String())
	}
	for i, h := range headers {
		f.SetCellValue(sheet, cell(i+1, 1), h)
	}
	if err := headerStyle(f, sheet, len(headers)); err != nil {
		return err
	}

	for i, u := range units {
		row := i + 2
		values := []any{u.Name, u.Tier, u.Culture, u.TroopType, u.Ranged, u.Mounted, u.SkillValue, u.EquipmentValue, u.Level, u.Count}
		for j, v := range values {
			f.SetCellValue(sheet, cell(j+1, row), v)
		}
		for j, slot := range domain.EquipmentSlots {
			if id := strings.TrimSpace(u.Equipment[slot.String()]); id != "" {
				f.SetCellValue(sheet, cell(len(rosterColumns)+1+j, row), id)
			}
		}
	}
	return nil
}

func writeCache(f *excelize.File, entries []cache.Entry) error {
	sheet := SheetCache
	headers := []string{"Kind", "Type", "Tier", "Culture", "Count", "Items"}
	for i, h := range headers {
		f.SetCellValue(sheet, cell(i+1, 1), h)
	}
	if err := headerStyle(f, sheet, len(headers)); err != nil {
		return err
	}
	for i, e := range entries {
		row := i + 2
		f.SetCellValue(sheet, cell(1, row), e.Kind)
		f.SetCellValue(sheet, cell(2, row), e.Type)
		f.SetCellValue(sheet, cell(3, row), e.Tier)
		f.SetCellValue(sheet, cell(4, row), e.Culture)
		f.SetCellValue(sheet, cell(5, row), e.Count)
		f.SetCellValue(sheet, cell(6, row), strings.Join(e.Items, ", "))
	}
	return nil
}
