package regression

import (
	"github.com/liucxer/regression-tools/pkg/dataset"
)

// 解析导数, 不允许数值差分
// ∂SSE/∂intercept = Σ −2*(y_i − ŷ_i)
func InterceptGradient(ds *dataset.Dataset, intercept float64, slope float64) float64 {
	sum := float64(0)
	for i := 0; i < ds.Len(); i++ {
		sum += -2 * (ds.Y(i) - Predict(intercept, slope, ds.X(i)))
	}
	return sum
}

// ∂SSE/∂slope = Σ −2*x_i*(y_i − ŷ_i)
func SlopeGradient(ds *dataset.Dataset, intercept float64, slope float64) float64 {
	sum := float64(0)
	for i := 0; i < ds.Len(); i++ {
		sum += -2 * ds.X(i) * (ds.Y(i) - Predict(intercept, slope, ds.X(i)))
	}
	return sum
}
