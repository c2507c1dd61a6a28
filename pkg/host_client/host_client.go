package host_client

import (
	"time"

	"github.com/pkg/sftp"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

// HostClient连接一台采样机器, 通过ssh执行命令, 通过sftp取样本文件
type HostClient struct {
	IpAddr     string
	Port       string
	User       string
	Password   string
	sshClient  *ssh.Client
	sftpClient *sftp.Client
}

func NewHostClient(ipAddr, port, user, password string) (*HostClient, error) {
	client := HostClient{
		IpAddr:   ipAddr,
		Port:     port,
		User:     user,
		Password: password,
	}

	err := client.open()
	return &client, err
}

func (client *HostClient) sshConfig() *ssh.ClientConfig {
	config := &ssh.ClientConfig{
		Timeout:         time.Second,
		User:            client.User,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}
	config.Auth = []ssh.AuthMethod{ssh.Password(client.Password)}
	return config
}

func (client *HostClient) open() error {
	var (
		err error
	)
	addr := client.IpAddr + ":" + client.Port
	client.sshClient, err = ssh.Dial("tcp", addr, client.sshConfig())
	if err != nil {
		logrus.Errorf("ssh.Dial err. [err:%v,addr:%s]", err, addr)
		return err
	}

	client.sftpClient, err = sftp.NewClient(client.sshClient, sftp.MaxPacket(1<<15))
	if err != nil {
		logrus.Errorf("sftp.NewClient err. [err:%v,addr:%s]", err, addr)
		return err
	}

	return nil
}

func (client *HostClient) Close() error {
	// sftp关闭失败也要继续关ssh
	sftpErr := client.sftpClient.Close()
	if sftpErr != nil {
		logrus.Errorf("client.sftpClient.Close error [client:%v, err:%v]", client, sftpErr)
	}

	sshErr := client.sshClient.Close()
	if sshErr != nil {
		logrus.Errorf("client.sshClient.Close error [client:%v, err:%v]", client, sshErr)
		return sshErr
	}

	return sftpErr
}
