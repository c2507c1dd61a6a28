package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/google/uuid"
	"github.com/liucxer/confmiddleware/conflogger"
	"github.com/liucxer/regression-tools/pkg/csv"
	"github.com/liucxer/regression-tools/pkg/dataset"
	"github.com/liucxer/regression-tools/pkg/regression"
	"github.com/liucxer/regression-tools/pkg/report"
	"github.com/sirupsen/logrus"
)

type ExecConfig struct {
	DataFile string `json:"dataFile"`
	regression.Hyperparameters
}

func (execConfig *ExecConfig) Run() error {
	ds, err := dataset.Load(execConfig.DataFile)
	if err != nil {
		return err
	}

	res, err := regression.Descend(ds, execConfig.Hyperparameters)
	if err != nil {
		logrus.Errorf("regression.Descend err:%v, execConfig:%+v", err, execConfig)
		return err
	}

	lineFit, err := regression.LeastSquares(ds)
	if err != nil {
		logrus.Errorf("regression.LeastSquares err:%v, dataFile:%s", err, execConfig.DataFile)
		return err
	}

	summary := report.Build(ds, res, lineFit)
	logrus.Infof("summary:%+v", summary)

	trajectoryFile := uuid.New().String() + "_trajectory.csv"
	err = csv.WriteFile(trajectoryFile, res.Trajectory)
	if err != nil {
		logrus.Errorf("csv.WriteFile err:%v, trajectoryFile:%s", err, trajectoryFile)
		return err
	}
	logrus.Infof("trajectoryFile:%s, steps:%d, exitReason:%s", trajectoryFile, res.Steps, res.ExitReason)
	return nil
}

func init() {
	var logger = conflogger.Log{
		Name:  "gradient_fit",
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
