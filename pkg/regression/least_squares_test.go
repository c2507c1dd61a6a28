package regression_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/liucxer/regression-tools/pkg/dataset"
	"github.com/liucxer/regression-tools/pkg/regression"
	"github.com/stretchr/testify/require"
)

func TestLeastSquares(t *testing.T) {
	/*
		1	5.919042797
		1	23.33703046
		1	25.14476282
		5	36.06610548
		11	53.49233359
		22	86.56219916
	*/
	x := []float64{1, 1, 1, 5, 11, 22}
	y := []float64{5.919042797, 23.33703046, 25.14476282, 36.06610548, 53.49233359, 86.56219916}
	ds, err := dataset.New(x, y)
	require.NoError(t, err)

	res, err := regression.LeastSquares(ds)
	require.NoError(t, err)
	spew.Dump(res)

	// y = 3.2658x+16.104
	require.InDelta(t, 3.2658, res.Slope, 1e-3)
	require.InDelta(t, 16.104, res.Intercept, 1e-3)
	require.Equal(t, int64(6), res.DataCount)
}

func TestLeastSquares_VerticalLine(t *testing.T) {
	ds, err := dataset.New([]float64{3, 3, 3}, []float64{1, 2, 3})
	require.NoError(t, err)

	_, err = regression.LeastSquares(ds)
	require.Error(t, err)
}
