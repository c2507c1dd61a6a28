package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/go-courier/httptransport/client"
	"github.com/liucxer/confmiddleware/conflogger"
	"github.com/liucxer/regression-tools/cmd/clients/client_fit_report"
	"github.com/liucxer/regression-tools/pkg/dataset"
	"github.com/liucxer/regression-tools/pkg/regression"
	"github.com/liucxer/regression-tools/pkg/report"
	"github.com/sirupsen/logrus"
)

// 拟合之后把结果上报到fit-report服务
type ExecConfig struct {
	DataFile   string `json:"dataFile"`
	ReportHost string `json:"reportHost"`
	ReportPort int16  `json:"reportPort"`
	regression.Hyperparameters
}

func buildReportBody(dataCount int64, summary report.Summary) client_fit_report.FitReportBody {
	return client_fit_report.FitReportBody{
		DataCount:      dataCount,
		Intercept:      summary.Intercept,
		Slope:          summary.Slope,
		Steps:          summary.Steps,
		ExitReason:     string(summary.ExitReason),
		SSE:            summary.SSE,
		RefIntercept:   summary.RefIntercept,
		RefSlope:       summary.RefSlope,
		InterceptDelta: summary.InterceptDelta,
		SlopeDelta:     summary.SlopeDelta,
	}
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

	c := &client.Client{
		Protocol: "http",
		Host:     execConfig.ReportHost,
		Port:     uint16(execConfig.ReportPort),
		Timeout:  5 * time.Second,
	}
	c.SetDefaults()

	fitReportClient := client_fit_report.NewClientFitReport(c)
	req := &client_fit_report.PushFitReport{
		FitReportBody: buildReportBody(int64(ds.Len()), summary),
	}

	fitReport, _, err := fitReportClient.PushFitReport(req)
	if err != nil {
		if client_fit_report.IsClientError(err) {
			logrus.Errorf("PushFitReport rejected. err:%v, summary:%+v", err, summary)
		} else {
			logrus.Errorf("PushFitReport err:%v, reportHost:%s", err, execConfig.ReportHost)
		}
		return err
	}

	logrus.Infof("reportID:%s, steps:%d, exitReason:%s", fitReport.ReportID, res.Steps, res.ExitReason)
	return nil
}

func init() {
	var logger = conflogger.Log{
		Name:  "fit_report",
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
