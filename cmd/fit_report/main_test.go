package main

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/liucxer/regression-tools/pkg/dataset"
	"github.com/liucxer/regression-tools/pkg/regression"
	"github.com/liucxer/regression-tools/pkg/report"
	"github.com/stretchr/testify/require"
)

func TestBuildReportBody(t *testing.T) {
	ds, err := dataset.New([]float64{0, 1, 2}, []float64{1, 3, 10})
	require.NoError(t, err)

	lineFit, err := regression.LeastSquares(ds)
	require.NoError(t, err)

	res, err := regression.Descend(ds, regression.Hyperparameters{
		LearningRate: 0.05,
		MinStep:      1e-10,
		MaxSteps:     200000,
	})
	require.NoError(t, err)

	summary := report.Build(ds, res, lineFit)
	body := buildReportBody(int64(ds.Len()), summary)
	spew.Dump(body)

	require.Equal(t, int64(3), body.DataCount)
	require.Equal(t, summary.Intercept, body.Intercept)
	require.Equal(t, summary.Slope, body.Slope)
	require.Equal(t, summary.Steps, body.Steps)
	require.Equal(t, string(regression.ExitConverged), body.ExitReason)
	require.Equal(t, summary.SSE, body.SSE)
	require.Equal(t, summary.RefSlope, body.RefSlope)
	require.Equal(t, summary.SlopeDelta, body.SlopeDelta)
}
