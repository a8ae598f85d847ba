package dataset

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Dataset is an in-memory table with one row per survey respondent.
type Dataset struct {
	df dataframe.DataFrame
}

// GroupMeans holds the mean of a value column per distinct group level.
// Means[i] belongs to Levels[i]; levels are in ascending order.
type GroupMeans struct {
	Levels []int
	Means  []float64
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return d.df.Nrow()
}

// Names returns the column names in file order.
func (d *Dataset) Names() []string {
	return d.df.Names()
}

// Head renders the first n rows as a table.
func (d *Dataset) Head(n int) string {
	if n > d.df.Nrow() {
		n = d.df.Nrow()
	}
	if n <= 0 {
		return ""
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return d.df.Subset(idx).String()
}

// Column returns the values of the named column as floats.
func (d *Dataset) Column(name string) ([]float64, error) {
	col, err := d.col(name)
	if err != nil {
		return nil, err
	}
	return col.Float(), nil
}

// Ints returns the values of the named column as integers.
func (d *Dataset) Ints(name string) ([]int, error) {
	col, err := d.col(name)
	if err != nil {
		return nil, err
	}
	return col.Int()
}

// AddExp appends column dst holding exp(src) for every row.
func (d *Dataset) AddExp(src, dst string) error {
	values, err := d.Column(src)
	if err != nil {
		return err
	}

	result := make([]float64, len(values))
	for i, v := range values {
		result[i] = math.Exp(v)
	}

	mut := d.df.Mutate(series.New(result, series.Float, dst))
	if mut.Err != nil {
		return mut.Err
	}
	d.df = mut
	return nil
}

// MeanWhere returns the mean of valueCol over rows where groupCol equals level.
// It returns NaN when no row matches.
func (d *Dataset) MeanWhere(groupCol string, level int, valueCol string) (float64, error) {
	if _, err := d.col(groupCol); err != nil {
		return 0, err
	}
	if _, err := d.col(valueCol); err != nil {
		return 0, err
	}

	matched := d.df.Filter(dataframe.F{
		Colname:    groupCol,
		Comparator: series.Eq,
		Comparando: level,
	})
	if matched.Err != nil {
		return 0, matched.Err
	}
	if matched.Nrow() == 0 {
		return math.NaN(), nil
	}
	return matched.Col(valueCol).Mean(), nil
}

// Levels returns the distinct values of groupCol in ascending order.
func (d *Dataset) Levels(groupCol string) ([]int, error) {
	levels, _, err := d.aggregate(groupCol, groupCol, dataframe.Aggregation_MEAN)
	return levels, err
}

// GroupMeans computes the mean of valueCol for each distinct level of groupCol.
// Levels absent from the data are not interpolated.
func (d *Dataset) GroupMeans(groupCol, valueCol string) (*GroupMeans, error) {
	levels, means, err := d.aggregate(groupCol, valueCol, dataframe.Aggregation_MEAN)
	if err != nil {
		return nil, err
	}
	return &GroupMeans{Levels: levels, Means: means}, nil
}

// aggregate groups rows by groupCol and reduces valueCol with typ.
// Results are ordered by ascending level.
func (d *Dataset) aggregate(groupCol, valueCol string, typ dataframe.AggregationType) ([]int, []float64, error) {
	if _, err := d.col(groupCol); err != nil {
		return nil, nil, err
	}
	if _, err := d.col(valueCol); err != nil {
		return nil, nil, err
	}

	groups := d.df.GroupBy(groupCol)
	if groups.Err != nil {
		return nil, nil, groups.Err
	}
	agg := groups.Aggregation([]dataframe.AggregationType{typ}, []string{valueCol})
	if agg.Err != nil {
		return nil, nil, agg.Err
	}

	keys, err := agg.Col(groupCol).Int()
	if err != nil {
		return nil, nil, err
	}
	reduced := agg.Col(fmt.Sprintf("%s_%s", valueCol, typ))
	if reduced.Err != nil {
		return nil, nil, reduced.Err
	}
	values := reduced.Float()

	// GroupBy yields groups in map order
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(keys[a], keys[b])
	})

	levels := make([]int, len(order))
	result := make([]float64, len(order))
	for i, j := range order {
		levels[i] = keys[j]
		result[i] = values[j]
	}
	return levels, result, nil
}

func (d *Dataset) col(name string) (series.Series, error) {
	if !slices.Contains(d.df.Names(), name) {
		return series.Series{}, fmt.Errorf("column %q not found", name)
	}
	col := d.df.Col(name)
	if col.Err != nil {
		return series.Series{}, col.Err
	}
	return col, nil
}
