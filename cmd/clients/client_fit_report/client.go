package client_fit_report

import (
	context "context"

	github_com_go_courier_courier "github.com/go-courier/courier"
)

type ClientFitReport interface {
	WithContext(context.Context) ClientFitReport
	Context() context.Context
	PushFitReport(req *PushFitReport, metas ...github_com_go_courier_courier.Metadata) (*FitReport, github_com_go_courier_courier.Metadata, error)
	ListFitReport(req *ListFitReport, metas ...github_com_go_courier_courier.Metadata) (*[]FitReport, github_com_go_courier_courier.Metadata, error)
	Liveness(metas ...github_com_go_courier_courier.Metadata) (*map[string]string, github_com_go_courier_courier.Metadata, error)
}

func NewClientFitReport(c github_com_go_courier_courier.Client) *ClientFitReportStruct {
	return &(ClientFitReportStruct{
		Client: c,
	})
}

type ClientFitReportStruct struct {
	Client github_com_go_courier_courier.Client
	ctx    context.Context
}

func (c *ClientFitReportStruct) WithContext(ctx context.Context) ClientFitReport {
	cc := new(ClientFitReportStruct)
	cc.Client = c.Client
	cc.ctx = ctx
	return cc
}

func (c *ClientFitReportStruct) Context() context.Context {
	if c.ctx != nil {
		return c.ctx
	}
	return context.Background()
}

func (c *ClientFitReportStruct) PushFitReport(req *PushFitReport, metas ...github_com_go_courier_courier.Metadata) (*FitReport, github_com_go_courier_courier.Metadata, error) {
	return req.InvokeContext(c.Context(), c.Client, metas...)
}

func (c *ClientFitReportStruct) ListFitReport(req *ListFitReport, metas ...github_com_go_courier_courier.Metadata) (*[]FitReport, github_com_go_courier_courier.Metadata, error) {
	return req.InvokeContext(c.Context(), c.Client, metas...)
}

func (c *ClientFitReportStruct) Liveness(metas ...github_com_go_courier_courier.Metadata) (*map[string]string, github_com_go_courier_courier.Metadata, error) {
	return (&Liveness{}).InvokeContext(c.Context(), c.Client, metas...)
}
