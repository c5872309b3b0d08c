// Package telemetry parses pipe-delimited flight-simulator attitude logs.
// Each data line carries nine numeric fields: pitch, roll, true heading,
// magnetic heading, magnetic variation, magnetic compass, and the body
// angular rates P, Q, R.
package telemetry

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// NumFields is the number of numeric columns in a data line.
const NumFields = 9

// Sample is one attitude record. Angles are in degrees, rates in degrees
// per second.
type Sample struct {
	Pitch       float64
	Roll        float64
	HeadingTrue float64
	HeadingMag  float64
	MagVar      float64
	MagComp     float64
	P           float64
	Q           float64
	R           float64
}

// Fields returns the sample's values in log column order.
func (s Sample) Fields() []float64 {
	return []float64{
		s.Pitch, s.Roll, s.HeadingTrue, s.HeadingMag,
		s.MagVar, s.MagComp, s.P, s.Q, s.R,
	}
}

// ReadLog reads a telemetry log file and returns its samples in file order.
// A line is treated as data only if it is non-empty, contains the field
// separator '|', and does not contain the header token "pitch". Empty
// fields after splitting are discarded, so trailing separators are
// harmless. A missing file surfaces as the os.Open error (wrapping
// fs.ErrNotExist) so callers can distinguish it from malformed data.
func ReadLog(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var samples []Sample
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.Contains(line, "|") || strings.Contains(line, "pitch") {
			continue
		}
		s, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		samples = append(samples, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return samples, nil
}

// parseLine splits a data line on '|' and parses exactly NumFields values.
func parseLine(line string) (Sample, error) {
	var values []float64
	for _, field := range strings.Split(line, "|") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Sample{}, fmt.Errorf("invalid field '%s': %w", field, err)
		}
		values = append(values, v)
	}
	if len(values) != NumFields {
		return Sample{}, fmt.Errorf("expected %d fields, got %d", NumFields, len(values))
	}
	return Sample{
		Pitch:       values[0],
		Roll:        values[1],
		HeadingTrue: values[2],
		HeadingMag:  values[3],
		MagVar:      values[4],
		MagComp:     values[5],
		P:           values[6],
		Q:           values[7],
		R:           values[8],
	}, nil
}
