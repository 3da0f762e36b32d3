package v1

import "github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"

type AnalyzeReq struct {
	Title   string `json:"title"`
	Source  string `json:"source"`
	Content string `json:"content"`
}

type AnalyzeReply struct {
	Id     int64                 `json:"id,omitempty"`
	Result *model.AnalysisResult `json:"result"`
}

type AnalyzeURLReq struct {
	Url string `json:"url"`
}

type AnalyzeURLReply struct {
	Id     int64                 `json:"id,omitempty"`
	Title  string                `json:"title"`
	Result *model.AnalysisResult `json:"result"`
}

type ListSamplesReq struct{}

type ListSamplesReply struct {
	Samples []model.SampleArticle `json:"samples"`
}

type AnalyzeSampleReq struct {
	Id string `json:"id"`
}

type AnalyzeSampleReply struct {
	Sample    model.SampleArticle   `json:"sample"`
	Result    *model.AnalysisResult `json:"result"`
	Expected  model.Prediction      `json:"expected"`
	Predicted model.Prediction      `json:"predicted"`
	Match     bool                  `json:"match"`
}

type ListHistoryReq struct {
	Limit int32 `json:"limit"`
}

type HistoryRecord struct {
	Id        int64                 `json:"id"`
	Title     string                `json:"title"`
	Source    string                `json:"source"`
	Result    *model.AnalysisResult `json:"result"`
	CreatedAt string                `json:"createdAt"`
}

type ListHistoryReply struct {
	Records []*HistoryRecord `json:"records"`
}
