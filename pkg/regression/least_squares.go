package regression

import (
	"errors"

	"github.com/liucxer/regression-tools/pkg/dataset"
)

type LineFit struct {
	// Slope是斜率, Intercept是截距
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	DataCount int64   `json:"dataCount"`
}

// LeastSquares是最小二乘闭式解, 用来校验梯度下降的结果
func LeastSquares(ds *dataset.Dataset) (LineFit, error) {
	xi := float64(0)
	x2 := float64(0)
	yi := float64(0)
	xy := float64(0)

	if ds == nil || ds.Len() == 0 {
		return LineFit{}, errors.New("empty dataset")
	}

	length := float64(ds.Len())
	for i := 0; i < ds.Len(); i++ {
		xi += ds.X(i)
		x2 += ds.X(i) * ds.X(i)
		yi += ds.Y(i)
		xy += ds.X(i) * ds.Y(i)
	}

	if xi*xi-x2*length == 0 {
		return LineFit{}, errors.New("all x values are equal")
	}

	slope := (yi*xi - xy*length) / (xi*xi - x2*length)
	intercept := (yi*x2 - xy*xi) / (x2*length - xi*xi)

	return LineFit{
		Slope:     slope,
		Intercept: intercept,
		DataCount: int64(ds.Len()),
	}, nil
}
