package interfacer

// Worker是采样机器的执行入口, 方便在测试里用假实现替换
type Worker interface {
	ExecCmd(cmd string) ([]byte, error)
	ReadFile(filePath string) ([]byte, error)
}
