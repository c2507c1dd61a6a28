package host_client

import (
	"io/ioutil"
	"time"

	"github.com/sirupsen/logrus"
)

// ReadFile把远端样本文件读进内存
func (client *HostClient) ReadFile(filePath string) ([]byte, error) {
	startTime := time.Now()
	logrus.Debugf("ReadFile start. ipaddr:%s, filePath:%s", client.IpAddr, filePath)
	defer func() {
		cost := time.Now().Sub(startTime).Seconds()
		logrus.Debugf("ReadFile end.   ipaddr:%s, filePath:%s, cost:%f", client.IpAddr, filePath, cost)
	}()

	srcFile, err := client.sftpClient.Open(filePath)
	if err != nil {
		logrus.Errorf("sftpClient.Open err. [err:%v,ipaddr:%s,filePath:%s]", err, client.IpAddr, filePath)
		return nil, err
	}
	defer func() { _ = srcFile.Close() }()

	bts, err := ioutil.ReadAll(srcFile)
	if err != nil {
		logrus.Errorf("ioutil.ReadAll err. [err:%v,ipaddr:%s,filePath:%s]", err, client.IpAddr, filePath)
		return nil, err
	}

	return bts, nil
}
