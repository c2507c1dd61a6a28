package dataset_test

import (
	"testing"

	"github.com/liucxer/regression-tools/pkg/dataset"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ds, err := dataset.New([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	require.Equal(t, float64(1), ds.X(0))
	require.Equal(t, float64(4), ds.Y(1))

	_, err = dataset.New([]float64{1}, []float64{1, 2})
	require.Error(t, err)

	_, err = dataset.New(nil, nil)
	require.Error(t, err)
}

func TestNew_Immutable(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{3, 4}
	ds, err := dataset.New(x, y)
	require.NoError(t, err)

	// 修改原始切片不影响已构造的数据集
	x[0] = 100
	require.Equal(t, float64(1), ds.X(0))

	pairs := ds.Pairs()
	pairs[0].Y = 100
	require.Equal(t, float64(3), ds.Y(0))
}

func TestParse(t *testing.T) {
	bts := []byte("1,5.919042797\n5,36.06610548\n\n11,53.49233359\n")
	ds, err := dataset.Parse(bts)
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())
	require.Equal(t, float64(5), ds.X(1))
	require.Equal(t, 36.06610548, ds.Y(1))

	_, err = dataset.Parse([]byte("1,2,3\n"))
	require.Error(t, err)

	_, err = dataset.Parse([]byte("a,2\n"))
	require.Error(t, err)

	_, err = dataset.Parse([]byte(""))
	require.Error(t, err)
}

func TestFromPairs(t *testing.T) {
	ds, err := dataset.FromPairs([]dataset.Pair{{X: 1, Y: 2}, {X: 3, Y: 4}})
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	require.Equal(t, float64(4), ds.Y(1))
}
