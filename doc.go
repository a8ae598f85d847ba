// Package gowages analyzes a weekly wage survey.
//
// It loads respondents' log weekly wages and years of education from CSV,
// summarizes both the log and the exponentiated wage, aggregates mean
// wages by education level and fits a least squares line through them.
// Two figures are written as PNG files.
//
// # Quick Start
//
//	config := pipeline.DefaultConfig()
//	config.DataPath = "Assig1.csv"
//	result, err := pipeline.Run(config, os.Stdout)
//
// # Packages
//
//   - dataset: CSV loading, derived columns and grouped means
//   - stats: descriptive statistics, linear fit, kernel density, quantiles
//   - plots: wage density and education means figures
//   - pipeline: the end-to-end run
package gowages
