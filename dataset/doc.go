// Package dataset provides the in-memory survey table and the column
// operations used by the wage analysis.
//
// A Dataset wraps a gota DataFrame loaded once from CSV. Apart from
// derived columns appended with AddExp it is never modified.
//
// # Loading from CSV
//
//	ds, err := dataset.Load("Assig1.csv")
//
//	// Or from any reader
//	ds, err := dataset.LoadFromReader(r, dataset.DefaultCSVOptions())
//
// # Columns
//
//	logWages, err := ds.Column("lwklywge")
//
//	// Append wage = exp(lwklywge)
//	err = ds.AddExp("lwklywge", "wage")
//
// # Grouping
//
// Aggregate a value column by an integer grouping column:
//
//	// Mean wage over respondents with 16 years of education
//	m, err := ds.MeanWhere("educ", 16, "wage")
//
//	// One mean per distinct education level, ascending
//	g, err := ds.GroupMeans("educ", "lwklywge")
//	// g.Levels, g.Means
package dataset
