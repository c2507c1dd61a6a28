package client_fit_report_test

import (
	"errors"
	"testing"

	"github.com/go-courier/statuserror"
	"github.com/liucxer/regression-tools/cmd/clients/client_fit_report"
	"github.com/stretchr/testify/require"
)

func TestOperations(t *testing.T) {
	push := client_fit_report.PushFitReport{}
	require.Equal(t, "/fit-report/v0/report", push.Path())
	require.Equal(t, "POST", push.Method())

	list := client_fit_report.ListFitReport{}
	require.Equal(t, "/fit-report/v0/report", list.Path())
	require.Equal(t, "GET", list.Method())

	liveness := client_fit_report.Liveness{}
	require.Equal(t, "/fit-report/v0/liveness", liveness.Path())
	require.Equal(t, "GET", liveness.Method())
}

func TestIsClientError(t *testing.T) {
	require.False(t, client_fit_report.IsClientError(nil))
	require.False(t, client_fit_report.IsClientError(errors.New("plain error")))

	badRequest := &statuserror.StatusErr{
		Key:  "BadRequest",
		Code: 400999001,
		Msg:  "BadRequest",
	}
	require.True(t, client_fit_report.IsClientError(badRequest))

	internal := &statuserror.StatusErr{
		Key:  "InternalServerError",
		Code: 500999001,
		Msg:  "InternalServerError",
	}
	require.False(t, client_fit_report.IsClientError(internal))
}
