package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/liucxer/confmiddleware/conflogger"
	"github.com/liucxer/regression-tools/pkg/csv"
	"github.com/liucxer/regression-tools/pkg/dataset"
	"github.com/liucxer/regression-tools/pkg/regression"
	"github.com/liucxer/regression-tools/pkg/report"
	"github.com/sirupsen/logrus"
)

// 同一份数据按多个学习率逐个拟合, 各次之间互不影响
type ExecConfig struct {
	DataFile         string    `json:"dataFile"`
	OutputFile       string    `json:"outputFile"`
	LearningRates    []float64 `json:"learningRates"`
	InitialIntercept float64   `json:"initialIntercept"`
	InitialSlope     float64   `json:"initialSlope"`
	MinStep          float64   `json:"minStep"`
	MaxSteps         int64     `json:"maxSteps"`
}

type SweepRow struct {
	LearningRate float64               `json:"learningRate"`
	Intercept    float64               `json:"intercept"`
	Slope        float64               `json:"slope"`
	Steps        int64                 `json:"steps"`
	ExitReason   regression.ExitReason `json:"exitReason"`
	SSE          float64               `json:"sse"`
}

func (execConfig *ExecConfig) Run() error {
	ds, err := dataset.Load(execConfig.DataFile)
	if err != nil {
		return err
	}

	var rows []SweepRow
	for _, learningRate := range execConfig.LearningRates {
		hp := regression.Hyperparameters{
			InitialIntercept: execConfig.InitialIntercept,
			InitialSlope:     execConfig.InitialSlope,
			LearningRate:     learningRate,
			MinStep:          execConfig.MinStep,
			MaxSteps:         execConfig.MaxSteps,
		}

		res, err := regression.Descend(ds, hp)
		if err != nil {
			logrus.Errorf("regression.Descend err:%v, learningRate:%v", err, learningRate)
			return err
		}

		rows = append(rows, SweepRow{
			LearningRate: learningRate,
			Intercept:    report.Round(res.Intercept),
			Slope:        report.Round(res.Slope),
			Steps:        res.Steps,
			ExitReason:   res.ExitReason,
			SSE:          report.Round(regression.SSE(ds, res.Intercept, res.Slope)),
		})
		logrus.Infof("learningRate:%v, steps:%d, exitReason:%s", learningRate, res.Steps, res.ExitReason)
	}

	return csv.WriteFile(execConfig.OutputFile, rows)
}

func init() {
	var logger = conflogger.Log{
		Name:  "lr_sweep",
		Level: "Debug",
	}
	logger.SetDefaults()
	logger.Init()
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage:\n     ./cmd config.json")
		return
	}

	bts, err := ioutil.ReadFile(os.Args[1])
	if err != nil {
		logrus.Errorf("ioutil.ReadFile err:%v", err)
		return
	}

	execConfig := ExecConfig{}
	err = json.Unmarshal(bts, &execConfig)
	if err != nil {
		logrus.Errorf("json.Unmarshal err:%v", err)
		return
	}

	_ = execConfig.Run()
}
