// Package pipeline drives the per-scenario parse → analyze → report flow.
// Scenarios are processed sequentially and independently; a failure in one
// never stops the others.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/skyward-data/attitude.report/internal/analysis"
	"github.com/skyward-data/attitude.report/internal/config"
	"github.com/skyward-data/attitude.report/internal/report"
	"github.com/skyward-data/attitude.report/internal/telemetry"
)

// Outcome is the result of one scenario: either a results bundle or the
// error that stopped it.
type Outcome struct {
	Results *analysis.Results
	Err     error
}

// Run processes each configured scenario in order, writing the statistics
// report and any warnings to out. It returns the per-scenario outcomes;
// errors are recorded there rather than aborting the run.
func Run(cfg *config.AnalysisConfig, out io.Writer) map[string]Outcome {
	outcomes := make(map[string]Outcome)

	for _, scenario := range cfg.GetScenarios() {
		fmt.Fprintf(out, "\nAnalyzing %s scenario...\n", scenario)

		res, err := runScenario(cfg, scenario, out)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(out, "Warning: data file for %s not found\n", scenario)
			} else {
				fmt.Fprintf(out, "Error analyzing %s: %v\n", scenario, err)
			}
			outcomes[scenario] = Outcome{Err: err}
			continue
		}
		outcomes[scenario] = Outcome{Results: res}
	}

	return outcomes
}

func runScenario(cfg *config.AnalysisConfig, scenario string, out io.Writer) (*analysis.Results, error) {
	samples, err := telemetry.ReadLog(cfg.DataFile(scenario))
	if err != nil {
		return nil, err
	}

	res, err := analysis.Analyze(samples, scenario, cfg.GetSampleRate())
	if err != nil {
		return nil, err
	}

	fmt.Fprint(out, res.Report())

	plotPath := cfg.PlotFile(scenario)
	if err := report.RenderPNG(res, plotPath); err != nil {
		return nil, fmt.Errorf("render plot: %w", err)
	}
	log.Printf("Saved plot: %s", plotPath)

	if cfg.GetHTMLReport() {
		htmlPath := cfg.HTMLFile(scenario)
		if err := report.RenderHTML(res, htmlPath); err != nil {
			return nil, fmt.Errorf("render html: %w", err)
		}
		log.Printf("Saved HTML report: %s", htmlPath)
	}

	return res, nil
}
