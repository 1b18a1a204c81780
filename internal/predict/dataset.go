package predict

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Feature columns in model order.
var featureColumns = []string{"Open", "High", "Low", "Close", "Volume"}

var ErrMissingColumn = errors.New("training data is missing a column")

// Dataset holds feature rows and their next-close returns.
type Dataset struct {
	X [][]float64
	Y []float64
}

// LoadCSV reads a Date,Open,High,Low,Close,Volume file (column order is
// free). Empty cells repeat the previous row's value. The label of row i is
// Close[i]/Close[i-1] - 1, so the first row only seeds the first label.
func LoadCSV(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return Dataset{}, fmt.Errorf("error reading training data header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	cols := make([]int, len(featureColumns))
	for i, name := range featureColumns {
		idx, ok := index[name]
		if !ok {
			return Dataset{}, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		cols[i] = idx
	}
	closeCol := 3

	var (
		ds   Dataset
		prev []float64
		line = 1
	)
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		line++
		if readErr != nil {
			return Dataset{}, fmt.Errorf("error reading training data line %d: %w", line, readErr)
		}

		row := make([]float64, len(cols))
		for i, c := range cols {
			cell := ""
			if c < len(record) {
				cell = strings.TrimSpace(record[c])
			}
			if cell == "" {
				if prev == nil {
					return Dataset{}, fmt.Errorf("line %d: empty %s with nothing to fill from", line, featureColumns[i])
				}
				row[i] = prev[i]
				continue
			}
			v, parseErr := strconv.ParseFloat(cell, 64)
			if parseErr != nil {
				return Dataset{}, fmt.Errorf("line %d: %s: %w", line, featureColumns[i], parseErr)
			}
			row[i] = v
		}

		if prev != nil && prev[closeCol] != 0 {
			ret := row[closeCol]/prev[closeCol] - 1
			if !math.IsNaN(ret) && !math.IsInf(ret, 0) {
				ds.X = append(ds.X, row)
				ds.Y = append(ds.Y, ret)
			}
		}
		prev = row
	}

	return ds, nil
}

// Split shuffles the rows with seed and holds out ceil(len*testShare) of
// them for testing. The same seed always yields the same split.
func (d Dataset) Split(testShare float64, seed uint64) (train, test Dataset) {
	n := len(d.X)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

	testN := int(math.Ceil(float64(n) * testShare))
	if testN >= n {
		testN = 0
	}

	for k, i := range order {
		if k < testN {
			test.X = append(test.X, d.X[i])
			test.Y = append(test.Y, d.Y[i])
			continue
		}
		train.X = append(train.X, d.X[i])
		train.Y = append(train.Y, d.Y[i])
	}

	return train, test
}
