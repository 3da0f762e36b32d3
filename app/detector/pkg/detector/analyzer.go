package detector

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/config"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/inference"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"
)

const (
	// maxModelInput 交给模型的文本最大字符数
	maxModelInput = 1000

	initialConfidence = 0.7
	minConfidence     = 0.1
	maxConfidence     = 0.95

	// fallbackFakeThreshold 降级分析判定为 FAKE 的最少指标数
	fallbackFakeThreshold = 2
)

// 推理理由文案
const (
	ReasonNoPatterns      = "No major suspicious patterns detected"
	ReasonNegative        = "Extremely negative sentiment detected"
	ReasonTooShort        = "Article is very short, may lack sufficient information"
	ReasonSubstantial     = "Article has substantial content for analysis"
	ReasonStructured      = "Article follows proper journalistic structure"
	ReasonUnstructured    = "Article may lack proper journalistic structure"
	ReasonFallback        = "Fallback analysis used due to technical limitations"
	reasonMultiplePattern = "Multiple suspicious patterns detected (%d indicators)"
	reasonSomePatterns    = "Some suspicious patterns found (%d indicators)"
)

// Loader 惰性加载的模型句柄
type Loader interface {
	Get(ctx context.Context) (inference.Inferer, error)
}

// Analyzer 文章真伪分析器
type Analyzer struct {
	classifier Loader
	sentiment  inference.Inferer
	limiter    *rate.Limiter
	log        logrus.FieldLogger
	now        func() time.Time
}

// Option Analyzer 可选项
type Option func(*Analyzer)

// WithLimiter 设置模型调用限流器
func WithLimiter(l *rate.Limiter) Option {
	return func(a *Analyzer) { a.limiter = l }
}

// WithLogger 设置日志
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Analyzer) { a.log = l }
}

// NewAnalyzer 创建分析器。classifier 只需完成初始化，sentiment 用于情感分析
func NewAnalyzer(classifier Loader, sentiment inference.Inferer, opts ...Option) *Analyzer {
	a := &Analyzer{
		classifier: classifier,
		sentiment:  sentiment,
		log:        logrus.StandardLogger(),
		now:        time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// NewFromConfig 根据配置组装分析器，两个模型端点都惰性加载。
// static 情感端点不发起网络请求，不经过限流器
func NewFromConfig(cfg *config.Config, log logrus.FieldLogger) *Analyzer {
	opts := []Option{WithLogger(log)}
	if cfg.Sentiment.Provider != config.ProviderStatic {
		opts = append(opts, WithLimiter(NewLimiter(cfg.Concurrency)))
	}
	return NewAnalyzer(
		inference.NewLazy(inference.NewClassifierFactory(cfg.Classifier)),
		inference.NewLazy(inference.NewFactory(cfg.Sentiment, inference.TaskSentiment)),
		opts...,
	)
}

// NewLimiter 按 RPM/QPS 创建限流器，RPM 未配置时不限速
func NewLimiter(c config.ConcurrencyConfig) *rate.Limiter {
	limit := rate.Inf
	if c.RPM > 0 {
		limit = rate.Limit(float64(c.RPM) / 60.0)
	}
	burst := c.QPS
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(limit, burst)
}

// Analyze 分析文章文本。任何步骤失败都会降级为基于规则的结果，不会返回错误
func (a *Analyzer) Analyze(ctx context.Context, text string) (res *model.AnalysisResult) {
	start := a.now()
	defer func() {
		if r := recover(); r != nil {
			a.log.Errorf("分析过程发生异常: %v", r)
			res = a.fallback(text, start)
		}
	}()

	res, err := a.analyze(ctx, text, start)
	if err != nil {
		a.log.Errorf("分析失败，使用降级分析: %v", err)
		return a.fallback(text, start)
	}
	return res
}

func (a *Analyzer) analyze(ctx context.Context, text string, start time.Time) (*model.AnalysisResult, error) {
	cleanText := truncate(strings.TrimSpace(text), maxModelInput)

	if _, err := a.classifier.Get(ctx); err != nil {
		return nil, fmt.Errorf("classifier init: %w", err)
	}

	indicators := DetectSuspiciousPatterns(text)
	sentiment := a.analyzeSentiment(ctx, cleanText)
	length := utf8.RuneCountInString(text)

	prediction, confidence, reasoning := evaluate(text, length, len(indicators), sentiment)
	reliability := ReliabilityScore(confidence, len(indicators), sentiment, length)

	a.log.WithFields(logrus.Fields{
		"prediction": prediction,
		"indicators": len(indicators),
		"sentiment":  sentiment.Label,
	}).Debugf("分析完成 (confidence=%.2f)", confidence)

	return &model.AnalysisResult{
		Prediction:           prediction,
		Confidence:           confidence,
		Reasoning:            reasoning,
		ProcessingTime:       a.elapsed(start),
		ArticleLength:        length,
		SuspiciousIndicators: indicators,
		ReliabilityScore:     roundTenth(reliability),
	}, nil
}

// analyzeSentiment 情感分析尽力而为，失败时返回中性结果
func (a *Analyzer) analyzeSentiment(ctx context.Context, text string) model.Sentiment {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			a.log.Warnf("情感分析限流等待失败: %v", err)
			return model.NeutralSentiment
		}
	}
	pred, err := a.sentiment.Infer(ctx, text)
	if err != nil {
		a.log.Warnf("情感分析失败: %v", err)
		return model.NeutralSentiment
	}
	label := inference.NormalizeLabel(pred.Label)
	if label == "" || pred.Score < 0 || pred.Score > 1 {
		a.log.Warnf("情感分析结果无效: %+v", pred)
		return model.NeutralSentiment
	}
	return model.Sentiment{Label: label, Score: pred.Score}
}

// evaluate 按规则表依次调整置信度并给出判定
func evaluate(text string, length, suspiciousCount int, sentiment model.Sentiment) (model.Prediction, float64, []string) {
	prediction := model.PredictionReal
	confidence := initialConfidence
	var reasoning []string

	switch {
	case suspiciousCount >= 3:
		prediction = model.PredictionFake
		confidence = min(0.9, 0.6+float64(suspiciousCount)*0.1)
		reasoning = append(reasoning, fmt.Sprintf(reasonMultiplePattern, suspiciousCount))
	case suspiciousCount >= 1:
		confidence = max(0.4, 0.8-float64(suspiciousCount)*0.15)
		reasoning = append(reasoning, fmt.Sprintf(reasonSomePatterns, suspiciousCount))
	default:
		reasoning = append(reasoning, ReasonNoPatterns)
	}

	if sentiment.Label == model.SentimentNegative && sentiment.Score > 0.9 {
		confidence -= 0.1
		reasoning = append(reasoning, ReasonNegative)
	}

	if length < 100 {
		confidence -= 0.2
		reasoning = append(reasoning, ReasonTooShort)
	} else if length > 500 {
		reasoning = append(reasoning, ReasonSubstantial)
	}

	if hasProperStructure(text) {
		reasoning = append(reasoning, ReasonStructured)
	} else {
		confidence -= 0.1
		reasoning = append(reasoning, ReasonUnstructured)
	}

	if confidence < 0.5 {
		prediction = model.PredictionFake
	}

	return prediction, clamp(confidence, minConfidence, maxConfidence), reasoning
}

// hasProperStructure 同时包含句号和逗号，且不全是大写字母、标点与空白
func hasProperStructure(text string) bool {
	if !strings.Contains(text, ".") || !strings.Contains(text, ",") {
		return false
	}
	for _, r := range text {
		if !unicode.IsUpper(r) && !unicode.IsPunct(r) && !unicode.IsSymbol(r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// fallback 降级分析，只依赖本地规则
func (a *Analyzer) fallback(text string, start time.Time) *model.AnalysisResult {
	indicators := DetectSuspiciousPatterns(text)
	res := &model.AnalysisResult{
		Prediction:           model.PredictionReal,
		Confidence:           0.6,
		Reasoning:            []string{ReasonFallback},
		ProcessingTime:       a.elapsed(start),
		ArticleLength:        utf8.RuneCountInString(text),
		SuspiciousIndicators: indicators,
		ReliabilityScore:     6.5,
	}
	if len(indicators) >= fallbackFakeThreshold {
		res.Prediction = model.PredictionFake
		res.Confidence = 0.75
		res.ReliabilityScore = 3.5
	}
	return res
}

func (a *Analyzer) elapsed(start time.Time) int64 {
	ms := a.now().Sub(start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// truncate 按字符截断
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
