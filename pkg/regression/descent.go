package regression

import (
	"errors"
	"math"

	"github.com/liucxer/regression-tools/pkg/dataset"
	"github.com/sirupsen/logrus"
)

type ExitReason string

const (
	ExitConverged ExitReason = "converged"
	ExitMaxSteps  ExitReason = "max_steps_reached"
	ExitDiverged  ExitReason = "diverged"
)

type Hyperparameters struct {
	InitialIntercept float64 `json:"initialIntercept"`
	InitialSlope     float64 `json:"initialSlope"`
	LearningRate     float64 `json:"learningRate"`
	MinStep          float64 `json:"minStep"`
	MaxSteps         int64   `json:"maxSteps"`
}

func (hp *Hyperparameters) Validate(ds *dataset.Dataset) error {
	if ds == nil || ds.Len() == 0 {
		return errors.New("empty dataset")
	}
	if hp.LearningRate <= 0 {
		return errors.New("learningRate <= 0")
	}
	if hp.MaxSteps <= 0 {
		return errors.New("maxSteps <= 0")
	}
	if hp.MinStep < 0 {
		return errors.New("minStep < 0")
	}
	return nil
}

type StepRecord struct {
	Step      int64   `json:"step"`
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	StepSize  float64 `json:"stepSize"`
}

type FitResult struct {
	Intercept  float64      `json:"intercept"`
	Slope      float64      `json:"slope"`
	Steps      int64        `json:"steps"`
	ExitReason ExitReason   `json:"exitReason"`
	Trajectory []StepRecord `json:"trajectory"`
}

// Criterion返回true表示继续迭代
type Criterion func(steps int64, lastStep float64) bool

func StepCriterion(minStep float64, maxSteps int64) Criterion {
	return func(steps int64, lastStep float64) bool {
		return steps < maxSteps && lastStep > minStep
	}
}

// Descend同时拟合截距和斜率.
// 每一轮先更新截距, 再用新截距重算斜率梯度. 两个参数不是同步更新的.
func Descend(ds *dataset.Dataset, hp Hyperparameters) (*FitResult, error) {
	err := hp.Validate(ds)
	if err != nil {
		return nil, err
	}

	res := FitResult{
		Intercept: hp.InitialIntercept,
		Slope:     hp.InitialSlope,
	}

	continueFn := StepCriterion(hp.MinStep, hp.MaxSteps)
	lastStep := math.Inf(1)

	for continueFn(res.Steps, lastStep) {
		interceptStep := hp.LearningRate * InterceptGradient(ds, res.Intercept, res.Slope)
		res.Intercept = res.Intercept - interceptStep

		slopeStep := hp.LearningRate * SlopeGradient(ds, res.Intercept, res.Slope)
		res.Slope = res.Slope - slopeStep

		res.Steps++
		lastStep = math.Max(math.Abs(interceptStep), math.Abs(slopeStep))
		res.Trajectory = append(res.Trajectory, StepRecord{
			Step:      res.Steps,
			Intercept: res.Intercept,
			Slope:     res.Slope,
			StepSize:  lastStep,
		})
		logrus.Debugf("Descend step:%d, intercept:%v, slope:%v, stepSize:%v",
			res.Steps, res.Intercept, res.Slope, lastStep)

		if !finite(res.Intercept) || !finite(res.Slope) {
			res.ExitReason = ExitDiverged
			return &res, nil
		}
	}

	if lastStep <= hp.MinStep {
		res.ExitReason = ExitConverged
	} else {
		res.ExitReason = ExitMaxSteps
	}
	return &res, nil
}

// DescendSlope只拟合斜率, 截距固定
func DescendSlope(ds *dataset.Dataset, intercept float64, hp Hyperparameters) (*FitResult, error) {
	err := hp.Validate(ds)
	if err != nil {
		return nil, err
	}

	res := FitResult{
		Intercept: intercept,
		Slope:     hp.InitialSlope,
	}

	continueFn := StepCriterion(hp.MinStep, hp.MaxSteps)
	lastStep := math.Inf(1)

	for continueFn(res.Steps, lastStep) {
		slopeStep := hp.LearningRate * SlopeGradient(ds, res.Intercept, res.Slope)
		res.Slope = res.Slope - slopeStep

		res.Steps++
		lastStep = math.Abs(slopeStep)
		res.Trajectory = append(res.Trajectory, StepRecord{
			Step:      res.Steps,
			Intercept: res.Intercept,
			Slope:     res.Slope,
			StepSize:  lastStep,
		})
		logrus.Debugf("DescendSlope step:%d, slope:%v, stepSize:%v",
			res.Steps, res.Slope, lastStep)

		if !finite(res.Slope) {
			res.ExitReason = ExitDiverged
			return &res, nil
		}
	}

	if lastStep <= hp.MinStep {
		res.ExitReason = ExitConverged
	} else {
		res.ExitReason = ExitMaxSteps
	}
	return &res, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
