package dataset

import (
	"bufio"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Delimiter rune // Field delimiter (default: ',')
	HasHeader bool // Whether CSV has header row (default: true)
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
		HasHeader: true,
	}
}

// Load reads a dataset from a CSV file.
func Load(filename string) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadFromReader(bufio.NewReader(file), DefaultCSVOptions())
}

// LoadFromReader reads a dataset from an io.Reader.
// Column types are inferred from the data; no schema is enforced.
func LoadFromReader(r io.Reader, opts *CSVOptions) (*Dataset, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(opts.Delimiter),
		dataframe.HasHeader(opts.HasHeader),
		dataframe.DetectTypes(true),
	)
	if df.Err != nil {
		return nil, df.Err
	}

	return &Dataset{df: df}, nil
}
