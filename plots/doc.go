// Package plots renders the wage analysis figures as PNG files.
//
// WageDensity draws the log and exponentiated wage distributions side by
// side, each as a normalized histogram with a kernel density overlay.
// EducationMeans draws the per-education-level mean wage and, optionally,
// the least squares line through it.
//
//	err := plots.WageDensity(logWages, wages, "wages_density.png")
//
//	line, path, err := plots.EducationMeans(means, true, ".")
//	// path == "educ_means_lr.png"
package plots
