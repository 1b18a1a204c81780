// Package predict trains the linear return model behind /predict. The model
// is fitted once at startup and read-only afterwards, so concurrent Predict
// calls need no locking.
package predict

import (
	"errors"
	"fmt"
	"math"
)

// ridge keeps the normal equations solvable when features are collinear
// (Open and Close are often equal on quiet days). It is far below the
// scale of standardized data.
const ridge = 1e-8

var (
	ErrNotEnoughData    = errors.New("not enough rows to fit the model")
	ErrFeatureMismatch  = errors.New("feature vector length does not match the model")
	ErrSingularSystem   = errors.New("normal equations are singular")
	ErrModelUnavailable = errors.New("prediction model is not available")
)

//go:generate mockgen -source=model.go -destination=../mock/predict_mock.go -package=mock

// ReturnPredictor maps an Open, High, Low, Close, Volume vector to an
// expected fractional return.
type ReturnPredictor interface {
	Predict(features []float64) (float64, error)
}

// Model is an ordinary least squares fit on standardized features.
type Model struct {
	means     []float64
	scales    []float64
	weights   []float64
	intercept float64
}

// Fit solves the normal equations for x (one row per sample) and y.
// Constant columns get a zero weight.
func Fit(x [][]float64, y []float64) (*Model, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, ErrNotEnoughData
	}
	p := len(x[0])
	if len(x) < p+1 {
		return nil, fmt.Errorf("%w: %d rows for %d features", ErrNotEnoughData, len(x), p)
	}

	m := &Model{
		means:   make([]float64, p),
		scales:  make([]float64, p),
		weights: make([]float64, p),
	}
	for _, row := range x {
		if len(row) != p {
			return nil, ErrFeatureMismatch
		}
		for j, v := range row {
			m.means[j] += v
		}
	}
	n := float64(len(x))
	for j := range m.means {
		m.means[j] /= n
	}
	for _, row := range x {
		for j, v := range row {
			d := v - m.means[j]
			m.scales[j] += d * d
		}
	}
	for j := range m.scales {
		m.scales[j] = math.Sqrt(m.scales[j] / n)
	}

	// Design matrix columns: intercept, then standardized features.
	dim := p + 1
	a := make([][]float64, dim)
	for i := range a {
		a[i] = make([]float64, dim+1)
	}

	z := make([]float64, dim)
	for i, row := range x {
		z[0] = 1
		for j, v := range row {
			z[j+1] = m.standardize(j, v)
		}
		for r := range dim {
			for c := range dim {
				a[r][c] += z[r] * z[c]
			}
			a[r][dim] += z[r] * y[i]
		}
	}
	for j := 1; j < dim; j++ {
		a[j][j] += ridge
	}

	beta, err := solve(a)
	if err != nil {
		return nil, err
	}

	m.intercept = beta[0]
	copy(m.weights, beta[1:])
	return m, nil
}

func (m *Model) standardize(j int, v float64) float64 {
	if m.scales[j] == 0 {
		return 0
	}
	return (v - m.means[j]) / m.scales[j]
}

// Predict implements [ReturnPredictor].
func (m *Model) Predict(features []float64) (float64, error) {
	if len(features) != len(m.weights) {
		return 0, fmt.Errorf("%w: want %d, got %d", ErrFeatureMismatch, len(m.weights), len(features))
	}

	out := m.intercept
	for j, v := range features {
		out += m.weights[j] * m.standardize(j, v)
	}

	return out, nil
}

// solve runs Gaussian elimination with partial pivoting on the augmented
// matrix a (n rows, n+1 columns). a is modified in place.
func solve(a [][]float64) ([]float64, error) {
	n := len(a)

	for col := range n {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, ErrSingularSystem
		}
		a[col], a[pivot] = a[pivot], a[col]

		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c <= n; c++ {
				a[r][c] -= f * a[col][c]
			}
		}
	}

	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := a[r][n]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}

	return x, nil
}

// MeanSquaredError of m over x and y.
func (m *Model) MeanSquaredError(x [][]float64, y []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrNotEnoughData
	}

	var sum float64
	for i, row := range x {
		pred, err := m.Predict(row)
		if err != nil {
			return 0, err
		}
		d := pred - y[i]
		sum += d * d
	}

	return sum / float64(len(x)), nil
}
