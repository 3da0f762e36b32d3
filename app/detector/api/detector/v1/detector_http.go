package v1

import (
	context "context"

	http "github.com/go-kratos/kratos/v2/transport/http"
)

const OperationDetectorAnalyze = "/detector.v1.Detector/Analyze"
const OperationDetectorAnalyzeURL = "/detector.v1.Detector/AnalyzeURL"
const OperationDetectorListSamples = "/detector.v1.Detector/ListSamples"
const OperationDetectorAnalyzeSample = "/detector.v1.Detector/AnalyzeSample"
const OperationDetectorListHistory = "/detector.v1.Detector/ListHistory"

// DetectorHTTPServer 检测服务 HTTP 接口
type DetectorHTTPServer interface {
	Analyze(context.Context, *AnalyzeReq) (*AnalyzeReply, error)
	AnalyzeURL(context.Context, *AnalyzeURLReq) (*AnalyzeURLReply, error)
	ListSamples(context.Context, *ListSamplesReq) (*ListSamplesReply, error)
	AnalyzeSample(context.Context, *AnalyzeSampleReq) (*AnalyzeSampleReply, error)
	ListHistory(context.Context, *ListHistoryReq) (*ListHistoryReply, error)
}

func RegisterDetectorHTTPServer(s *http.Server, srv DetectorHTTPServer) {
	r := s.Route("/")
	r.POST("/api/v1/analyze", _Detector_Analyze0_HTTP_Handler(srv))
	r.POST("/api/v1/analyze/url", _Detector_AnalyzeURL0_HTTP_Handler(srv))
	r.GET("/api/v1/samples", _Detector_ListSamples0_HTTP_Handler(srv))
	r.POST("/api/v1/samples/{id}/analyze", _Detector_AnalyzeSample0_HTTP_Handler(srv))
	r.GET("/api/v1/history", _Detector_ListHistory0_HTTP_Handler(srv))
}

func _Detector_Analyze0_HTTP_Handler(srv DetectorHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in AnalyzeReq
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationDetectorAnalyze)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Analyze(ctx, req.(*AnalyzeReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*AnalyzeReply)
		return ctx.Result(200, reply)
	}
}

func _Detector_AnalyzeURL0_HTTP_Handler(srv DetectorHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in AnalyzeURLReq
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationDetectorAnalyzeURL)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.AnalyzeURL(ctx, req.(*AnalyzeURLReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*AnalyzeURLReply)
		return ctx.Result(200, reply)
	}
}

func _Detector_ListSamples0_HTTP_Handler(srv DetectorHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListSamplesReq
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationDetectorListSamples)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListSamples(ctx, req.(*ListSamplesReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListSamplesReply)
		return ctx.Result(200, reply)
	}
}

func _Detector_AnalyzeSample0_HTTP_Handler(srv DetectorHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in AnalyzeSampleReq
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationDetectorAnalyzeSample)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.AnalyzeSample(ctx, req.(*AnalyzeSampleReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*AnalyzeSampleReply)
		return ctx.Result(200, reply)
	}
}

func _Detector_ListHistory0_HTTP_Handler(srv DetectorHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListHistoryReq
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationDetectorListHistory)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListHistory(ctx, req.(*ListHistoryReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListHistoryReply)
		return ctx.Result(200, reply)
	}
}
