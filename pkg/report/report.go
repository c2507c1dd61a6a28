package report

import (
	"github.com/liucxer/regression-tools/pkg/dataset"
	"github.com/liucxer/regression-tools/pkg/regression"
	"github.com/shopspring/decimal"
)

// Summary是一次拟合的上报结果, 数值统一保留4位小数
type Summary struct {
	Intercept      float64               `json:"intercept"`
	Slope          float64               `json:"slope"`
	Steps          int64                 `json:"steps"`
	ExitReason     regression.ExitReason `json:"exitReason"`
	SSE            float64               `json:"sse"`
	RefIntercept   float64               `json:"refIntercept"`
	RefSlope       float64               `json:"refSlope"`
	InterceptDelta float64               `json:"interceptDelta"`
	SlopeDelta     float64               `json:"slopeDelta"`
}

func Round(f float64) float64 {
	res, _ := decimal.NewFromFloat(f).Round(4).Float64()
	return res
}

func Build(ds *dataset.Dataset, res *regression.FitResult, ref regression.LineFit) Summary {
	return Summary{
		Intercept:      Round(res.Intercept),
		Slope:          Round(res.Slope),
		Steps:          res.Steps,
		ExitReason:     res.ExitReason,
		SSE:            Round(regression.SSE(ds, res.Intercept, res.Slope)),
		RefIntercept:   Round(ref.Intercept),
		RefSlope:       Round(ref.Slope),
		InterceptDelta: Round(res.Intercept - ref.Intercept),
		SlopeDelta:     Round(res.Slope - ref.Slope),
	}
}
