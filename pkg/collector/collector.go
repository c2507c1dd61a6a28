package collector

import (
	"github.com/liucxer/regression-tools/pkg/dataset"
	"github.com/liucxer/regression-tools/pkg/interfacer"
	"github.com/sirupsen/logrus"
)

type Source struct {
	Worker   interfacer.Worker
	FilePath string
}

// Collect依次读取各台机器上的样本文件, 合并成一个数据集
func Collect(sources []Source) (*dataset.Dataset, error) {
	var pairs []dataset.Pair

	for _, source := range sources {
		bts, err := source.Worker.ReadFile(source.FilePath)
		if err != nil {
			logrus.Errorf("source.Worker.ReadFile err:%v, filePath:%s", err, source.FilePath)
			return nil, err
		}

		ds, err := dataset.Parse(bts)
		if err != nil {
			logrus.Errorf("dataset.Parse err:%v, filePath:%s", err, source.FilePath)
			return nil, err
		}

		pairs = append(pairs, ds.Pairs()...)
		logrus.Debugf("Collect filePath:%s, samples:%d", source.FilePath, ds.Len())
	}

	return dataset.FromPairs(pairs)
}
