package client_fit_report

import (
	context "context"

	github_com_go_courier_courier "github.com/go-courier/courier"
	github_com_go_courier_metax "github.com/go-courier/metax"
)

type PushFitReport struct {
	FitReportBody FitReportBody `in:"body"`
}

func (PushFitReport) Path() string {
	return "/fit-report/v0/report"
}

func (PushFitReport) Method() string {
	return "POST"
}

// @StatusErr[InternalServerError][500999001][InternalServerError]
func (req *PushFitReport) Do(ctx context.Context, c github_com_go_courier_courier.Client, metas ...github_com_go_courier_courier.Metadata) github_com_go_courier_courier.Result {

	ctx = github_com_go_courier_metax.ContextWith(ctx, "operationID", "fitReport.PushFitReport")
	return c.Do(ctx, req, metas...)

}

func (req *PushFitReport) InvokeContext(ctx context.Context, c github_com_go_courier_courier.Client, metas ...github_com_go_courier_courier.Metadata) (*FitReport, github_com_go_courier_courier.Metadata, error) {
	resp := new(FitReport)

	meta, err := req.Do(ctx, c, metas...).Into(resp)

	return resp, meta, err
}

func (req *PushFitReport) Invoke(c github_com_go_courier_courier.Client, metas ...github_com_go_courier_courier.Metadata) (*FitReport, github_com_go_courier_courier.Metadata, error) {
	return req.InvokeContext(context.Background(), c, metas...)
}

type ListFitReport struct {
	EndTime   GithubComGoCourierSqlxV2DatatypesTimestamp `in:"query" name:"endTime,omitempty"`
	Offset    int64                                      `in:"query" default:"0" name:"offset,omitempty" validate:"@int64[0,]"`
	Size      int64                                      `in:"query" default:"10" name:"size,omitempty" validate:"@int64[-1,]"`
	StartTime GithubComGoCourierSqlxV2DatatypesTimestamp `in:"query" name:"startTime,omitempty"`
}

func (ListFitReport) Path() string {
	return "/fit-report/v0/report"
}

func (ListFitReport) Method() string {
	return "GET"
}

// @StatusErr[InternalServerError][500999001][InternalServerError]
func (req *ListFitReport) Do(ctx context.Context, c github_com_go_courier_courier.Client, metas ...github_com_go_courier_courier.Metadata) github_com_go_courier_courier.Result {

	ctx = github_com_go_courier_metax.ContextWith(ctx, "operationID", "fitReport.ListFitReport")
	return c.Do(ctx, req, metas...)

}

func (req *ListFitReport) InvokeContext(ctx context.Context, c github_com_go_courier_courier.Client, metas ...github_com_go_courier_courier.Metadata) (*[]FitReport, github_com_go_courier_courier.Metadata, error) {
	resp := new([]FitReport)

	meta, err := req.Do(ctx, c, metas...).Into(resp)

	return resp, meta, err
}

func (req *ListFitReport) Invoke(c github_com_go_courier_courier.Client, metas ...github_com_go_courier_courier.Metadata) (*[]FitReport, github_com_go_courier_courier.Metadata, error) {
	return req.InvokeContext(context.Background(), c, metas...)
}

type Liveness struct {
}

func (Liveness) Path() string {
	return "/fit-report/v0/liveness"
}

func (Liveness) Method() string {
	return "GET"
}

func (req *Liveness) Do(ctx context.Context, c github_com_go_courier_courier.Client, metas ...github_com_go_courier_courier.Metadata) github_com_go_courier_courier.Result {

	ctx = github_com_go_courier_metax.ContextWith(ctx, "operationID", "fitReport.Liveness")
	return c.Do(ctx, req, metas...)

}

func (req *Liveness) InvokeContext(ctx context.Context, c github_com_go_courier_courier.Client, metas ...github_com_go_courier_courier.Metadata) (*map[string]string, github_com_go_courier_courier.Metadata, error) {
	resp := new(map[string]string)

	meta, err := req.Do(ctx, c, metas...).Into(resp)

	return resp, meta, err
}

func (req *Liveness) Invoke(c github_com_go_courier_courier.Client, metas ...github_com_go_courier_courier.Metadata) (*map[string]string, github_com_go_courier_courier.Metadata, error) {
	return req.InvokeContext(context.Background(), c, metas...)
}
