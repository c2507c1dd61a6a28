package dataset

import (
	"errors"
)

type Pair struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dataset是一组有序的(x,y)采样点, 构造之后只读
type Dataset struct {
	xs []float64
	ys []float64
}

func New(x []float64, y []float64) (*Dataset, error) {
	if len(x) != len(y) {
		return nil, errors.New("len(x)!= len(y)")
	}
	if len(x) == 0 {
		return nil, errors.New("empty dataset")
	}

	ds := Dataset{
		xs: make([]float64, len(x)),
		ys: make([]float64, len(y)),
	}
	copy(ds.xs, x)
	copy(ds.ys, y)
	return &ds, nil
}

func FromPairs(pairs []Pair) (*Dataset, error) {
	xs := make([]float64, 0, len(pairs))
	ys := make([]float64, 0, len(pairs))
	for _, pair := range pairs {
		xs = append(xs, pair.X)
		ys = append(ys, pair.Y)
	}
	return New(xs, ys)
}

func (ds *Dataset) Len() int {
	return len(ds.xs)
}

func (ds *Dataset) X(i int) float64 {
	return ds.xs[i]
}

func (ds *Dataset) Y(i int) float64 {
	return ds.ys[i]
}

func (ds *Dataset) Pairs() []Pair {
	pairs := make([]Pair, 0, len(ds.xs))
	for i := range ds.xs {
		pairs = append(pairs, Pair{X: ds.xs[i], Y: ds.ys[i]})
	}
	return pairs
}
