package dataset

import (
	"errors"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// 输入文件格式, 每行一个采样点:
/*
1,5.919042797
5,36.06610548
11,53.49233359
22,86.56219916
*/
func Parse(bts []byte) (*Dataset, error) {
	var (
		xs []float64
		ys []float64
	)

	lines := strings.Split(string(bts), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		items := strings.Split(line, ",")
		if len(items) != 2 {
			return nil, errors.New("bad sample line: " + line)
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(items[0]), 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(items[1]), 64)
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
		ys = append(ys, y)
	}

	return New(xs, ys)
}

func Load(filePath string) (*Dataset, error) {
	bts, err := ioutil.ReadFile(filePath)
	if err != nil {
		logrus.Errorf("ioutil.ReadFile err:%v, filePath:%s", err, filePath)
		return nil, err
	}
	return Parse(bts)
}
