// Command flight-report analyzes flight-simulator telemetry logs for a set
// of named scenarios and renders per-scenario statistics and plots.
//
// By default it looks for cruising_data.txt, climbing_data.txt,
// rolling_data.txt and descending_data.txt in the working directory and
// writes {scenario}_analysis.png next to them. The process exits 0 after
// attempting every scenario, regardless of individual failures.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/skyward-data/attitude.report/internal/config"
	"github.com/skyward-data/attitude.report/internal/pipeline"
)

func main() {
	cfg := parseFlags()

	outcomes := pipeline.Run(cfg, os.Stdout)

	failed := 0
	for scenario, outcome := range outcomes {
		if outcome.Err != nil {
			log.Printf("scenario %s did not complete: %v", scenario, outcome.Err)
			failed++
		}
	}
	log.Printf("Analyzed %d/%d scenarios", len(outcomes)-failed, len(outcomes))
}

func parseFlags() *config.AnalysisConfig {
	var (
		configPath = flag.String("config", "", "Path to JSON analysis config")
		dataDir    = flag.String("data", "", "Directory containing {scenario}_data.txt files")
		outDir     = flag.String("out", "", "Directory for rendered reports")
		html       = flag.Bool("html", false, "Also write interactive HTML reports")
		scenarios  = flag.String("scenarios", "", "Comma-separated scenario list (default: cruising,climbing,rolling,descending)")
	)
	flag.Parse()

	cfg := &config.AnalysisConfig{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Flags override the config file.
	if *dataDir != "" {
		cfg.DataDir = dataDir
	}
	if *outDir != "" {
		cfg.OutputDir = outDir
	}
	if *html {
		cfg.HTMLReport = html
	}
	if *scenarios != "" {
		var list []string
		for _, s := range strings.Split(*scenarios, ",") {
			if s = strings.TrimSpace(s); s != "" {
				list = append(list, s)
			}
		}
		cfg.Scenarios = list
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}
