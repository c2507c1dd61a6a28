package client_fit_report

import (
	github_com_go_courier_sqlx_v2_datatypes "github.com/go-courier/sqlx/v2/datatypes"
	github_com_go_courier_statuserror "github.com/go-courier/statuserror"
)

type GithubComGoCourierSqlxV2DatatypesTimestamp = github_com_go_courier_sqlx_v2_datatypes.Timestamp

type FitReportBody struct {
	DataCount      int64   `json:"dataCount"`
	Intercept      float64 `json:"intercept"`
	Slope          float64 `json:"slope"`
	Steps          int64   `json:"steps"`
	ExitReason     string  `json:"exitReason"`
	SSE            float64 `json:"sse"`
	RefIntercept   float64 `json:"refIntercept"`
	RefSlope       float64 `json:"refSlope"`
	InterceptDelta float64 `json:"interceptDelta"`
	SlopeDelta     float64 `json:"slopeDelta"`
}

type FitReport struct {
	ReportID string `json:"reportID"`
	FitReportBody
	CreatedAt GithubComGoCourierSqlxV2DatatypesTimestamp `json:"createdAt"`
	UpdatedAt GithubComGoCourierSqlxV2DatatypesTimestamp `json:"updatedAt"`
}

func IsClientError(err error) bool {
	statusErr, ok := github_com_go_courier_statuserror.IsStatusErr(err)
	if !ok {
		return false
	}
	return statusErr.StatusCode() >= 400 && statusErr.StatusCode() < 500
}
