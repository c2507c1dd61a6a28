package csv_test

import (
	"fmt"
	"testing"

	"github.com/liucxer/regression-tools/pkg/csv"
	"github.com/liucxer/regression-tools/pkg/regression"
	"github.com/stretchr/testify/require"
)

func TestRecordToCsv(t *testing.T) {
	record := regression.StepRecord{
		Step:      1,
		Intercept: 0.5,
		Slope:     3.8,
		StepSize:  2.8,
	}

	nameStr, valueStr, err := csv.RecordToCsv(record)
	require.NoError(t, err)
	require.Equal(t, "Step,Intercept,Slope,StepSize", nameStr)
	require.Equal(t, "1,0.5,3.8,2.8", valueStr)

	nameStr, valueStr, err = csv.RecordToCsv(&record)
	require.NoError(t, err)
	require.Equal(t, "Step,Intercept,Slope,StepSize", nameStr)
	require.Equal(t, "1,0.5,3.8,2.8", valueStr)

	_, _, err = csv.RecordToCsv(3)
	require.Error(t, err)
}

func TestRecordListToCsv(t *testing.T) {
	type SweepRow struct {
		LearningRate float64 `json:"learningRate"`
		Fit          regression.LineFit
	}

	rows := []SweepRow{
		{LearningRate: 0.05, Fit: regression.LineFit{Slope: 4.5, Intercept: 0.5, DataCount: 3}},
		{LearningRate: 0.08, Fit: regression.LineFit{Slope: 4.5, Intercept: 0.5, DataCount: 3}},
	}

	valueStr, err := csv.RecordListToCsv(rows)
	require.NoError(t, err)
	fmt.Println(valueStr)
	require.Contains(t, valueStr, "Fit.Slope")
	require.Contains(t, valueStr, "0.05,4.5,0.5,3")

	_, err = csv.RecordListToCsv(3)
	require.Error(t, err)

	_, err = csv.RecordListToCsv([]int{1, 2})
	require.Error(t, err)
}

func TestRecordListToCsv_Empty(t *testing.T) {
	// 没有数据也要有表头
	valueStr, err := csv.RecordListToCsv([]regression.StepRecord{})
	require.NoError(t, err)
	require.Equal(t, "Step,Intercept,Slope,StepSize\n", valueStr)

	valueStr, err = csv.RecordListToCsv([]*regression.StepRecord(nil))
	require.NoError(t, err)
	require.Equal(t, "Step,Intercept,Slope,StepSize\n", valueStr)
}
