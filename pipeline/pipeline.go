// Package pipeline runs the wage analysis end to end.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sartorproj/gowages/dataset"
	"github.com/sartorproj/gowages/plots"
	"github.com/sartorproj/gowages/stats"
)

// Column names in the survey file.
const (
	LogWageColumn   = "lwklywge"
	WageColumn      = "wage"
	EducationColumn = "educ"
)

// Config holds the fixed inputs of a run.
type Config struct {
	DataPath       string // CSV file with lwklywge and educ columns
	OutputDir      string // Directory receiving the PNG figures
	EducationLevel int    // Years of education for the single-level mean (default: 16)
	Regression     bool   // Overlay the least squares line on the means figure
}

// DefaultConfig returns the configuration used by the demo program.
func DefaultConfig() *Config {
	return &Config{
		DataPath:       "Assig1.csv",
		OutputDir:      ".",
		EducationLevel: 16,
		Regression:     true,
	}
}

// Result collects everything a run computed.
type Result struct {
	Rows      int
	Stats     map[string]stats.Summary
	Bands     map[string]stats.Band
	LevelMean float64
	Means     *dataset.GroupMeans
	Fit       *stats.Line
	Files     []string
}

// Run loads the data, reports statistics to w and writes both figures.
// The first failing step aborts the run.
func Run(config *Config, w io.Writer) (*Result, error) {
	if config == nil {
		config = DefaultConfig()
	}

	ds, err := dataset.Load(config.DataPath)
	if err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	fmt.Fprintln(w, ds.Head(5))

	if err := ds.AddExp(LogWageColumn, WageColumn); err != nil {
		return nil, fmt.Errorf("derive %s: %w", WageColumn, err)
	}

	result := &Result{
		Rows:  ds.Len(),
		Stats: make(map[string]stats.Summary),
		Bands: make(map[string]stats.Band),
	}

	logWages, err := ds.Column(LogWageColumn)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", LogWageColumn, err)
	}
	wages, err := ds.Column(WageColumn)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", WageColumn, err)
	}

	densityPath := filepath.Join(config.OutputDir, plots.DensityFile)
	if err := plots.WageDensity(logWages, wages, densityPath); err != nil {
		return nil, fmt.Errorf("plot wage density: %w", err)
	}
	result.Files = append(result.Files, densityPath)

	for _, col := range []struct {
		name   string
		values []float64
	}{
		{WageColumn, wages},
		{LogWageColumn, logWages},
	} {
		s := stats.Describe(col.values)
		band := stats.QuantileBand(col.values, 0.05, 0.95)
		result.Stats[col.name] = s
		result.Bands[col.name] = band

		fmt.Fprintf(w, "Sample Mean of Wage (%s): %.2f\n", col.name, s.Mean)
		fmt.Fprintf(w, "Sample Median of Wage (%s): %.2f\n", col.name, s.Median)
		fmt.Fprintf(w, "Coefficient of Skewness of Wage (%s): %.2f\n", col.name, s.Skewness)
		fmt.Fprintf(w, "5-95 pct of Wage (%s): (%.2f, %.2f)\n", col.name, band.Low, band.High)
	}

	result.LevelMean, err = ds.MeanWhere(EducationColumn, config.EducationLevel, WageColumn)
	if err != nil {
		return nil, fmt.Errorf("mean at %d years: %w", config.EducationLevel, err)
	}
	fmt.Fprintf(w, "Mean Wage at %d Years of Education: %.2f\n", config.EducationLevel, result.LevelMean)

	result.Means, err = ds.GroupMeans(EducationColumn, LogWageColumn)
	if err != nil {
		return nil, fmt.Errorf("education means: %w", err)
	}

	fit, meansPath, err := plots.EducationMeans(result.Means, config.Regression, config.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("plot education means: %w", err)
	}
	result.Fit = fit
	result.Files = append(result.Files, meansPath)

	if fit != nil {
		fmt.Fprintf(w, "Regression slope: %.4f\n", fit.Slope)
		fmt.Fprintf(w, "Regression intercept: %.4f\n", fit.Intercept)
	}

	return result, nil
}
