package pipeline

import (
	"bytes"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyward-data/attitude.report/internal/config"
)

const validLog = `pitch | roll | heading_true | heading_mag | mag_var | mag_comp | P | Q | R
2.1 | -0.5 | 271.4 | 269.0 | -2.4 | 268.5 | 0.1 | 0.2 | -0.1
2.3 | -0.4 | 271.5 | 269.1 | -2.4 | 268.6 | 0.0 | 0.1 | -0.2
2.0 | -0.6 | 271.3 | 268.9 | -2.4 | 268.4 | -0.1 | 0.0 | 0.1
`

func testConfig(t *testing.T, scenarios ...string) *config.AnalysisConfig {
	t.Helper()
	dataDir := t.TempDir()
	outDir := t.TempDir()
	return &config.AnalysisConfig{
		Scenarios: scenarios,
		DataDir:   &dataDir,
		OutputDir: &outDir,
	}
}

func writeScenario(t *testing.T, cfg *config.AnalysisConfig, scenario, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(cfg.DataFile(scenario), []byte(content), 0644))
}

func TestRunCompleteScenario(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "cruising")
	writeScenario(t, cfg, "cruising", validLog)

	var out bytes.Buffer
	outcomes := Run(cfg, &out)

	require.Len(t, outcomes, 1)
	require.NoError(t, outcomes["cruising"].Err)
	require.NotNil(t, outcomes["cruising"].Results)
	assert.Len(t, outcomes["cruising"].Results.Time, 3)

	assert.Contains(t, out.String(), "Analyzing cruising scenario...")
	assert.Contains(t, out.String(), "CRUISING Statistics:")

	info, err := os.Stat(cfg.PlotFile("cruising"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunMissingFileContinues(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "cruising", "climbing")
	// Only climbing gets a data file; cruising is first and must not
	// stop the run.
	writeScenario(t, cfg, "climbing", validLog)

	var out bytes.Buffer
	outcomes := Run(cfg, &out)

	require.Len(t, outcomes, 2)
	require.Error(t, outcomes["cruising"].Err)
	assert.ErrorIs(t, outcomes["cruising"].Err, fs.ErrNotExist)
	require.NoError(t, outcomes["climbing"].Err)

	assert.Contains(t, out.String(), "Warning: data file for cruising not found")
	assert.Contains(t, out.String(), "CLIMBING Statistics:")
}

func TestRunMalformedFileReportsAnalysisError(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "rolling")
	writeScenario(t, cfg, "rolling", "1.0 | bogus | 3.0 | 4.0 | 5.0 | 6.0 | 7.0 | 8.0 | 9.0\n")

	var out bytes.Buffer
	outcomes := Run(cfg, &out)

	require.Error(t, outcomes["rolling"].Err)
	assert.Contains(t, out.String(), "Error analyzing rolling:")

	// No partial output for the failed scenario.
	_, err := os.Stat(cfg.PlotFile("rolling"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunEmptyDataFile(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "descending")
	writeScenario(t, cfg, "descending", "pitch | roll | heading\n")

	var out bytes.Buffer
	outcomes := Run(cfg, &out)

	require.Error(t, outcomes["descending"].Err)
	assert.Contains(t, out.String(), "Error analyzing descending:")
}

func TestRunHTMLReport(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "cruising")
	enabled := true
	cfg.HTMLReport = &enabled
	writeScenario(t, cfg, "cruising", validLog)

	var out bytes.Buffer
	outcomes := Run(cfg, &out)
	require.NoError(t, outcomes["cruising"].Err)

	data, err := os.ReadFile(cfg.HTMLFile("cruising"))
	require.NoError(t, err)
	html := string(data)
	for _, series := range []string{"Pitch", "Roll", "Heading", "P (Roll Rate)"} {
		assert.True(t, strings.Contains(html, series), "missing series %q", series)
	}
}

func TestRunScenarioOrder(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "climbing", "cruising")
	writeScenario(t, cfg, "climbing", validLog)
	writeScenario(t, cfg, "cruising", validLog)

	var out bytes.Buffer
	Run(cfg, &out)

	s := out.String()
	climbing := strings.Index(s, "Analyzing climbing scenario")
	cruising := strings.Index(s, "Analyzing cruising scenario")
	require.GreaterOrEqual(t, climbing, 0)
	require.GreaterOrEqual(t, cruising, 0)
	assert.Less(t, climbing, cruising, "scenarios must run in configured order")
}

func TestRunDefaultScenariosAllMissing(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	cfg := &config.AnalysisConfig{DataDir: &dataDir, OutputDir: &dataDir}

	var out bytes.Buffer
	outcomes := Run(cfg, &out)

	require.Len(t, outcomes, 4)
	for _, scenario := range config.DefaultScenarios {
		assert.ErrorIs(t, outcomes[scenario].Err, fs.ErrNotExist, scenario)
		assert.Contains(t, out.String(), "Warning: data file for "+scenario+" not found")
	}
}
