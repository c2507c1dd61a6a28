package collector_test

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/liucxer/regression-tools/pkg/collector"
	"github.com/stretchr/testify/require"
)

type fakeWorker struct {
	files map[string][]byte
}

func (worker *fakeWorker) ExecCmd(cmd string) ([]byte, error) {
	return nil, nil
}

func (worker *fakeWorker) ReadFile(filePath string) ([]byte, error) {
	bts, ok := worker.files[filePath]
	if !ok {
		return nil, errors.New("file does not exist")
	}
	return bts, nil
}

func TestCollect(t *testing.T) {
	worker := &fakeWorker{files: map[string][]byte{
		"/var/samples/a.csv": []byte("0,1\n1,3\n"),
		"/var/samples/b.csv": []byte("2,10\n"),
	}}

	sources := []collector.Source{
		{Worker: worker, FilePath: "/var/samples/a.csv"},
		{Worker: worker, FilePath: "/var/samples/b.csv"},
	}

	ds, err := collector.Collect(sources)
	require.NoError(t, err)
	spew.Dump(ds.Pairs())

	require.Equal(t, 3, ds.Len())
	require.Equal(t, float64(2), ds.X(2))
	require.Equal(t, float64(10), ds.Y(2))
}

func TestCollect_MissingFile(t *testing.T) {
	worker := &fakeWorker{files: map[string][]byte{}}

	_, err := collector.Collect([]collector.Source{
		{Worker: worker, FilePath: "/var/samples/missing.csv"},
	})
	require.Error(t, err)
}
