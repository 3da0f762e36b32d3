package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fake_news_detector/app/detector/internal/domain"
	"github.com/iWorld-y/fake_news_detector/app/detector/internal/repo"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/samples"
)

// MinContentLength 提交分析的正文最少字符数
const MinContentLength = 50

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

var (
	ErrContentRequired = errors.BadRequest("CONTENT_REQUIRED", "Please enter the article content to analyze.")
	ErrContentTooShort = errors.BadRequest("CONTENT_TOO_SHORT", "Please enter at least 50 characters for meaningful analysis.")
	ErrURLRequired     = errors.BadRequest("URL_REQUIRED", "Please enter the article url to analyze.")
	ErrSampleNotFound  = errors.NotFound("SAMPLE_NOT_FOUND", "sample article not found")
)

// Analyzer 文章分析能力
type Analyzer interface {
	Analyze(ctx context.Context, text string) *model.AnalysisResult
}

// Fetcher 根据 URL 获取文章
type Fetcher interface {
	Fetch(url string) (*model.Article, error)
}

// AnalysisUseCase 文章分析业务逻辑
type AnalysisUseCase struct {
	analyzer Analyzer
	fetcher  Fetcher
	repo     repo.HistoryRepo
	log      *log.Helper
}

// NewAnalysisUseCase 创建文章分析业务逻辑实例
func NewAnalysisUseCase(analyzer Analyzer, fetcher Fetcher, repo repo.HistoryRepo, logger log.Logger) *AnalysisUseCase {
	return &AnalysisUseCase{
		analyzer: analyzer,
		fetcher:  fetcher,
		repo:     repo,
		log:      log.NewHelper(logger),
	}
}

// Analyze 校验输入并分析文章，分析文本为 标题 + 空格 + 正文
func (uc *AnalysisUseCase) Analyze(ctx context.Context, in domain.ArticleInput) (*domain.AnalysisRecord, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if utf8.RuneCountInString(content) < MinContentLength {
		return nil, ErrContentTooShort
	}

	text := strings.TrimSpace(in.Title + " " + in.Content)
	record := &domain.AnalysisRecord{
		Title:  in.Title,
		Source: in.Source,
		Result: uc.run(ctx, text, utf8.RuneCountInString(in.Content)),
	}
	uc.save(ctx, record)

	uc.log.WithContext(ctx).Infof("文章分析完成: prediction=%s confidence=%.2f", record.Result.Prediction, record.Result.Confidence)
	return record, nil
}

// AnalyzeURL 抓取网页正文后按普通提交处理
func (uc *AnalysisUseCase) AnalyzeURL(ctx context.Context, url string) (*domain.AnalysisRecord, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrURLRequired
	}
	art, err := uc.fetcher.Fetch(url)
	if err != nil {
		uc.log.WithContext(ctx).Warnf("抓取文章失败 [%s]: %v", url, err)
		return nil, errors.BadRequest("FETCH_FAILED", "unable to fetch article").WithCause(err)
	}

	source := art.SiteName
	if source == "" {
		source = art.Link
	}
	return uc.Analyze(ctx, domain.ArticleInput{Title: art.Title, Source: source, Content: art.Content})
}

// ListSamples 返回内置示例文章
func (uc *AnalysisUseCase) ListSamples(ctx context.Context) []model.SampleArticle {
	return samples.All()
}

// AnalyzeSample 分析示例文章并与预期结果对比
func (uc *AnalysisUseCase) AnalyzeSample(ctx context.Context, id string) (*domain.SampleAnalysis, error) {
	sample, ok := samples.Get(id)
	if !ok {
		return nil, ErrSampleNotFound
	}

	res := uc.run(ctx, samples.Text(sample), utf8.RuneCountInString(sample.Content))
	uc.save(ctx, &domain.AnalysisRecord{Title: sample.Title, Source: sample.Source, Result: res})

	sa := &domain.SampleAnalysis{Sample: sample, Result: res}
	uc.log.WithContext(ctx).Infof("示例分析完成 [%s]: expected=%s predicted=%s", sample.ID, sample.ExpectedResult, res.Prediction)
	return sa, nil
}

// History 列出最近的分析记录
func (uc *AnalysisUseCase) History(ctx context.Context, limit int) ([]*domain.AnalysisRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return uc.repo.ListRecent(ctx, limit)
}

func (uc *AnalysisUseCase) run(ctx context.Context, text string, contentLength int) *model.AnalysisResult {
	res := uc.analyzer.Analyze(ctx, text)
	if res == nil {
		uc.log.WithContext(ctx).Error("分析器未返回结果")
		return technicalErrorResult(contentLength)
	}
	return res
}

// save 历史记录保存失败不影响分析结果
func (uc *AnalysisUseCase) save(ctx context.Context, record *domain.AnalysisRecord) {
	if err := uc.repo.SaveRecord(ctx, record); err != nil {
		uc.log.WithContext(ctx).Errorf("保存分析记录失败: %v", err)
	}
}

func technicalErrorResult(contentLength int) *model.AnalysisResult {
	return &model.AnalysisResult{
		Prediction:           model.PredictionFake,
		Confidence:           0,
		Reasoning:            []string{"Analysis failed due to technical error"},
		ProcessingTime:       0,
		ArticleLength:        contentLength,
		SuspiciousIndicators: []string{"Technical error occurred"},
		ReliabilityScore:     0,
	}
}
