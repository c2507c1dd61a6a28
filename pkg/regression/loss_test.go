package regression_test

import (
	"testing"

	"github.com/liucxer/regression-tools/pkg/regression"
	"github.com/stretchr/testify/require"
)

func TestSSE(t *testing.T) {
	ds := sampleDataset(t)

	// intercept=0, slope=1: 残差 1, 2, 8
	require.Equal(t, float64(1+4+64), regression.SSE(ds, 0, 1))

	// 闭式解处的SSE是全局最小
	lineFit, err := regression.LeastSquares(ds)
	require.NoError(t, err)

	best := regression.SSE(ds, lineFit.Intercept, lineFit.Slope)
	require.Less(t, best, regression.SSE(ds, lineFit.Intercept, lineFit.Slope+0.1))
	require.Less(t, best, regression.SSE(ds, lineFit.Intercept+0.1, lineFit.Slope))
}
