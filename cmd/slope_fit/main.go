package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/liucxer/confmiddleware/conflogger"
	"github.com/liucxer/regression-tools/pkg/dataset"
	"github.com/liucxer/regression-tools/pkg/regression"
	"github.com/sirupsen/logrus"
)

// 只拟合斜率, 截距取最小二乘闭式解
type ExecConfig struct {
	DataFile string `json:"dataFile"`
	regression.Hyperparameters
}

func (execConfig *ExecConfig) Run() error {
	ds, err := dataset.Load(execConfig.DataFile)
	if err != nil {
		return err
	}

	lineFit, err := regression.LeastSquares(ds)
	if err != nil {
		logrus.Errorf("regression.LeastSquares err:%v, dataFile:%s", err, execConfig.DataFile)
		return err
	}

	res, err := regression.DescendSlope(ds, lineFit.Intercept, execConfig.Hyperparameters)
	if err != nil {
		logrus.Errorf("regression.DescendSlope err:%v, execConfig:%+v", err, execConfig)
		return err
	}

	for _, record := range res.Trajectory {
		fmt.Printf("#%d\tslope:%v\tstepSize:%v\n", record.Step, record.Slope, record.StepSize)
	}

	logrus.Infof("slope:%v, closedFormSlope:%v, steps:%d, exitReason:%s",
		res.Slope, lineFit.Slope, res.Steps, res.ExitReason)
	return nil
}

func init() {
	var logger = conflogger.Log{
		Name:  "slope_fit",
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
