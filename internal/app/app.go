package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/aurceive/loadout_roster/internal/cache"
	"github.com/aurceive/loadout_roster/internal/catalog"
	"github.com/aurceive/loadout_roster/internal/config"
	"github.com/aurceive/loadout_roster/internal/domain"
	"github.com/aurceive/loadout_roster/internal/logging"
	"github.com/aurceive/loadout_roster/internal/output"
	"github.com/aurceive/loadout_roster/internal/roster"

	"go.uber.org/zap"
)

// Run executes the loadout assignment flow and returns the desired process exit code.
func Run() int {
	return RunWithOptions(Options{})
}

type Options struct {
	UseExamples bool
	// ConfigPath overrides the config location; relative paths resolve against the app root.
	ConfigPath string
}

// RunWithOptions executes the loadout assignment flow and returns the desired process exit code.
func RunWithOptions(opts Options) int {
	appRoot, err := FindRoot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, appRoot, opts); err != nil {
		if ee, ok := asExitError(err); ok {
			if ee.Err != nil && ee.Code != 0 {
				fmt.Fprintln(os.Stderr, ee.Err)
			}
			return ee.Code
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func resolvePath(appRoot, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(appRoot, filepath.FromSlash(p))
}

func configPath(appRoot string, opts Options) string {
	switch {
	case strings.TrimSpace(opts.ConfigPath) != "":
		return resolvePath(appRoot, opts.ConfigPath)
	case opts.UseExamples:
		return filepath.Join(appRoot, "input", "loadout_roster", "examples", "loadout_config.example.yaml")
	default:
		return filepath.Join(appRoot, configFileName)
	}
}

func loadRoster(path string) ([]domain.UnitSpec, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return output.ImportRosterXLSX(path)
	}
	return roster.LoadFile(path)
}

func run(ctx context.Context, appRoot string, opts Options) error {
	totalStart := time.Now()

	cfgPath := configPath(appRoot, opts)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("config loaded", zap.String("path", cfgPath), zap.String("roster_name", cfg.RosterName))

	items, err := catalog.LoadFile(resolvePath(appRoot, cfg.CatalogPath))
	if err != nil {
		return err
	}
	cat, err := catalog.New(items, catalog.Options{
		Blacklist:           cfg.Blacklist,
		BannedWeaponClasses: cfg.BannedWeaponClasses,
		RemoveCivilian:      cfg.RemoveCivilianEquipmentsInRandom,
	})
	if err != nil {
		return fmt.Errorf("catalog %s: %w", cfg.CatalogPath, err)
	}
	fmt.Printf("Catalog: %d items (%s)\n", cat.Len(), cfg.CatalogPath)

	specs, err := loadRoster(resolvePath(appRoot, cfg.RosterPath))
	if err != nil {
		return err
	}
	units, err := roster.Resolve(specs, cat)
	if err != nil {
		return fmt.Errorf("roster %s: %w", cfg.RosterPath, err)
	}
	if len(units) == 0 {
		return ExitWithError(ExitEmptyRoster, fmt.Errorf("roster %s has no units", cfg.RosterPath))
	}

	c := cache.New(cat, logger)
	session := roster.NewSession(c, roster.Options{
		Seed:          cfg.Seed,
		Workers:       cfg.Workers,
		Weighted:      cfg.WeightedSelection,
		GenerateEmpty: cfg.GenerateEmptySlots,
		Logger:        logger,
	})
	session.Build(units)
	fmt.Printf("Roster: %d units, %d records\n", len(units), len(session.Records()))

	fillStart := time.Now()
	stats, err := session.Fill(ctx)
	fillElapsed := time.Since(fillStart)
	if err != nil {
		return ExitWithError(ExitInterrupted, fmt.Errorf("fill interrupted: %w", err))
	}

	order := session.Order()
	output.PrintLoadouts(os.Stdout, order)
	fmt.Printf("Filled %d/%d records (%d slots), cache: %d keys, %d computations\n",
		stats.Filled, stats.Records, stats.Slots, c.Len(), c.Computations())

	workDir, err := ensureWorkDir(appRoot)
	if err != nil {
		return err
	}
	if err := writeCacheSnapshot(filepath.Join(workDir, "cache_snapshot.yaml"), c); err != nil {
		return err
	}

	if cfg.ShouldExportXlsx() {
		rep := output.Report{Records: order, Units: specs, Cache: c.Snapshot()}
		var xlsxPath string
		if strings.TrimSpace(cfg.OutputTablePath) != "" {
			xlsxPath = resolvePath(appRoot, cfg.OutputTablePath)
			if err := os.MkdirAll(filepath.Dir(xlsxPath), 0o755); err != nil {
				return err
			}
			if err := output.WriteReportXLSX(xlsxPath, rep); err != nil {
				return err
			}
		} else {
			if prev, ok, err := findLatestReport(appRoot, cfg.RosterName); err != nil {
				logger.Warn("scan previous reports", zap.Error(err))
			} else if ok {
				fmt.Println("Previous report:", prev)
			}
			xlsxPath, err = output.ExportLoadoutsXLSX(appRoot, cfg.RosterName, rep)
			if err != nil {
				return err
			}
		}
		fmt.Println("Exported loadouts to", xlsxPath)
	}

	// Timing summary
	totalElapsed := time.Since(totalStart)
	fmt.Printf("Timing: total=%s, fill=%s\n",
		totalElapsed.Round(time.Millisecond),
		fillElapsed.Round(time.Millisecond),
	)

	fmt.Println("Finished at", time.Now().Format(time.RFC3339))

	return nil
}
