package domain

import (
	"time"

	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"
)

// ArticleInput 用户提交的文章
type ArticleInput struct {
	Title   string
	Source  string // 仅记录，不参与分析
	Content string
}

// AnalysisRecord 一次分析及其保存信息
type AnalysisRecord struct {
	ID        int64
	Title     string
	Source    string
	Result    *model.AnalysisResult
	CreatedAt time.Time
}

// SampleAnalysis 示例文章分析结果
type SampleAnalysis struct {
	Sample model.SampleArticle
	Result *model.AnalysisResult
}

// Match 预测结果是否与示例预期一致
func (s *SampleAnalysis) Match() bool {
	return s.Result != nil && s.Result.Prediction == s.Sample.ExpectedResult
}
