package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/liucxer/confmiddleware/conflogger"
	"github.com/liucxer/regression-tools/pkg/collector"
	"github.com/liucxer/regression-tools/pkg/host_client"
	"github.com/sirupsen/logrus"
)

type HostConfig struct {
	IpAddr   string `json:"ipAddr"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	FilePath string `json:"filePath"`
}

type ExecConfig struct {
	Hosts      []HostConfig `json:"hosts"`
	OutputFile string       `json:"outputFile"`
}

func (execConfig *ExecConfig) Run() error {
	var sources []collector.Source

	for _, hostConfig := range execConfig.Hosts {
		client, err := host_client.NewHostClient(hostConfig.IpAddr, hostConfig.Port, hostConfig.User, hostConfig.Password)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		sources = append(sources, collector.Source{
			Worker:   client,
			FilePath: hostConfig.FilePath,
		})
	}

	ds, err := collector.Collect(sources)
	if err != nil {
		return err
	}

	data := ""
	for _, pair := range ds.Pairs() {
		data += strconv.FormatFloat(pair.X, 'f', -1, 64) + "," +
			strconv.FormatFloat(pair.Y, 'f', -1, 64) + "\n"
	}

	err = ioutil.WriteFile(execConfig.OutputFile, []byte(data), 0644)
	if err != nil {
		logrus.Errorf("ioutil.WriteFile err:%v, outputFile:%s", err, execConfig.OutputFile)
		return err
	}

	logrus.Infof("outputFile:%s, samples:%d", execConfig.OutputFile, ds.Len())
	return nil
}

func init() {
	var logger = conflogger.Log{
		Name:  "collect_samples",
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
