// Package analysis turns a scenario's telemetry samples into time series,
// quaternions and descriptive statistics.
package analysis

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/skyward-data/attitude.report/internal/attitude"
	"github.com/skyward-data/attitude.report/internal/telemetry"
)

// EulerStats aggregates the attitude angle series.
type EulerStats struct {
	PitchMean, PitchStd, PitchRange       float64
	RollMean, RollStd, RollRange          float64
	HeadingMean, HeadingStd, HeadingRange float64
}

// RateStats aggregates the body angular rate series. The max values are
// peak magnitudes (max of |v|), the means are signed.
type RateStats struct {
	PMax, QMax, RMax    float64
	PMean, QMean, RMean float64
}

// QuatStats holds the per-component spread of the quaternion series, a
// proxy for orientation stability.
type QuatStats struct {
	WStd, XStd, YStd, ZStd float64
}

// Stats is the full statistics bundle for one scenario.
type Stats struct {
	Euler EulerStats
	Rates RateStats
	Quat  QuatStats
}

// Results holds everything derived from one scenario's samples.
type Results struct {
	Scenario string

	// Time is the sample time axis in seconds, index/sampleRate.
	Time []float64

	Pitch   []float64
	Roll    []float64
	Heading []float64

	Quats []attitude.Quaternion
	QuatW []float64
	QuatX []float64
	QuatY []float64
	QuatZ []float64

	P []float64
	Q []float64
	R []float64

	Stats Stats
}

// Analyze derives the time axis, quaternion series and statistics for a
// scenario. sampleRate is the telemetry write rate in Hz.
func Analyze(samples []telemetry.Sample, scenario string, sampleRate float64) (*Results, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples for scenario %s", scenario)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %f", sampleRate)
	}

	n := len(samples)
	res := &Results{
		Scenario: scenario,
		Time:     make([]float64, n),
		Pitch:    make([]float64, n),
		Roll:     make([]float64, n),
		Heading:  make([]float64, n),
		Quats:    make([]attitude.Quaternion, n),
		QuatW:    make([]float64, n),
		QuatX:    make([]float64, n),
		QuatY:    make([]float64, n),
		QuatZ:    make([]float64, n),
		P:        make([]float64, n),
		Q:        make([]float64, n),
		R:        make([]float64, n),
	}

	for i, s := range samples {
		res.Time[i] = float64(i) / sampleRate
		res.Pitch[i] = s.Pitch
		res.Roll[i] = s.Roll
		res.Heading[i] = s.HeadingTrue
		res.P[i] = s.P
		res.Q[i] = s.Q
		res.R[i] = s.R

		q := attitude.FromEuler(s.Roll, s.Pitch, s.HeadingTrue)
		res.Quats[i] = q
		res.QuatW[i] = q.W
		res.QuatX[i] = q.X
		res.QuatY[i] = q.Y
		res.QuatZ[i] = q.Z
	}

	res.Stats = Stats{
		Euler: EulerStats{
			PitchMean:    stat.Mean(res.Pitch, nil),
			PitchStd:     popStdDev(res.Pitch),
			PitchRange:   peakToPeak(res.Pitch),
			RollMean:     stat.Mean(res.Roll, nil),
			RollStd:      popStdDev(res.Roll),
			RollRange:    peakToPeak(res.Roll),
			HeadingMean:  stat.Mean(res.Heading, nil),
			HeadingStd:   popStdDev(res.Heading),
			HeadingRange: peakToPeak(res.Heading),
		},
		Rates: RateStats{
			PMax:  maxAbs(res.P),
			QMax:  maxAbs(res.Q),
			RMax:  maxAbs(res.R),
			PMean: stat.Mean(res.P, nil),
			QMean: stat.Mean(res.Q, nil),
			RMean: stat.Mean(res.R, nil),
		},
		Quat: QuatStats{
			WStd: popStdDev(res.QuatW),
			XStd: popStdDev(res.QuatX),
			YStd: popStdDev(res.QuatY),
			ZStd: popStdDev(res.QuatZ),
		},
	}

	return res, nil
}

// Report renders the statistics as the human-readable per-scenario text
// written to standard output, each metric with six decimal digits.
func (r *Results) Report() string {
	var b strings.Builder
	e, rt, q := r.Stats.Euler, r.Stats.Rates, r.Stats.Quat

	fmt.Fprintf(&b, "\n%s Statistics:\n", strings.ToUpper(r.Scenario))

	b.WriteString("\nEuler Angles:\n")
	fmt.Fprintf(&b, "pitch_mean: %.6f\n", e.PitchMean)
	fmt.Fprintf(&b, "pitch_std: %.6f\n", e.PitchStd)
	fmt.Fprintf(&b, "pitch_range: %.6f\n", e.PitchRange)
	fmt.Fprintf(&b, "roll_mean: %.6f\n", e.RollMean)
	fmt.Fprintf(&b, "roll_std: %.6f\n", e.RollStd)
	fmt.Fprintf(&b, "roll_range: %.6f\n", e.RollRange)
	fmt.Fprintf(&b, "heading_mean: %.6f\n", e.HeadingMean)
	fmt.Fprintf(&b, "heading_std: %.6f\n", e.HeadingStd)
	fmt.Fprintf(&b, "heading_range: %.6f\n", e.HeadingRange)

	b.WriteString("\nAngular Rates (deg/s):\n")
	fmt.Fprintf(&b, "P_max: %.6f\n", rt.PMax)
	fmt.Fprintf(&b, "Q_max: %.6f\n", rt.QMax)
	fmt.Fprintf(&b, "R_max: %.6f\n", rt.RMax)
	fmt.Fprintf(&b, "P_mean: %.6f\n", rt.PMean)
	fmt.Fprintf(&b, "Q_mean: %.6f\n", rt.QMean)
	fmt.Fprintf(&b, "R_mean: %.6f\n", rt.RMean)

	b.WriteString("\nQuaternion Stability:\n")
	fmt.Fprintf(&b, "w_std: %.6f\n", q.WStd)
	fmt.Fprintf(&b, "x_std: %.6f\n", q.XStd)
	fmt.Fprintf(&b, "y_std: %.6f\n", q.YStd)
	fmt.Fprintf(&b, "z_std: %.6f\n", q.ZStd)

	return b.String()
}

// popStdDev is the population standard deviation (divide by n). gonum's
// stat.StdDev is the sample estimator, which is not what the report uses.
func popStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := stat.Mean(xs, nil)
	var sum float64
	for _, v := range xs {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// peakToPeak is max - min over the series.
func peakToPeak(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Max(xs) - floats.Min(xs)
}

// maxAbs is the largest magnitude in the series.
func maxAbs(xs []float64) float64 {
	var m float64
	for _, v := range xs {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
