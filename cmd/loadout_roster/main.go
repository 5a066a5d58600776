package main

import (
	"flag"
	"os"

	"github.com/aurceive/loadout_roster/internal/app"
)

func main() {
	useExamples := flag.Bool("useExamples", false, "use the example config from input/loadout_roster/examples instead of loadout_config.yaml")
	configPath := flag.String("config", "", "path to a config file (overrides -useExamples)")
	flag.Parse()
	os.Exit(app.RunWithOptions(app.Options{UseExamples: *useExamples, ConfigPath: *configPath}))
}
