package host_client

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

func (client *HostClient) Download(dstPath string, srcPath string) error {
	startTime := time.Now()
	logrus.Debugf("Download start. ipaddr:%s, srcPath:%s", client.IpAddr, srcPath)
	defer func() {
		cost := time.Now().Sub(startTime).Seconds()
		logrus.Debugf("Download end.   ipaddr:%s, srcPath:%s, cost:%f", client.IpAddr, srcPath, cost)
	}()

	srcFile, err := client.sftpClient.Open(srcPath)
	if err != nil {
		logrus.Errorf("sftpClient.Open err. [err:%v,ipaddr:%s,srcPath:%s]", err, client.IpAddr, srcPath)
		return err
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.Create(dstPath)
	if err != nil {
		logrus.Errorf("os.Create err. [err:%v,dstPath:%s]", err, dstPath)
		return err
	}
	defer func() { _ = dstFile.Close() }()

	_, err = io.Copy(dstFile, srcFile)
	if err != nil {
		logrus.Errorf("io.Copy err. [err:%v,dstPath:%s, srcPath:%s]", err, dstPath, srcPath)
		return err
	}

	return nil
}
