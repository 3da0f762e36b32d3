package detector

import (
	"context"
	"errors"
	"io"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/config"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/inference"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"
)

// longCleanText 超过 500 字符，只缺少来源引用
var longCleanText = strings.Repeat("The council met on Tuesday, and members discussed the annual budget in detail. ", 7)

const shortCleanText = "The council met on Tuesday, and members discussed the budget."

// threeIndicatorText 阴谋论、医疗断言、缺少来源
const threeIndicatorText = "Wake up! Big Pharma doesnt want you to see this miracle cure, a doctor said."

// twoIndicatorText 阴谋论、医疗断言，带有来源
const twoIndicatorText = "Wake up! Big Pharma doesnt want you to see this miracle cure. Source: a friend."

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func loadedClassifier() *inference.Lazy {
	return inference.NewLazy(func(ctx context.Context) (inference.Inferer, error) {
		return inference.Static{Label: "non-toxic", Score: 0.99}, nil
	})
}

func newTestAnalyzer(sentiment inference.Inferer) *Analyzer {
	return NewAnalyzer(loadedClassifier(), sentiment, WithLogger(quietLogger()))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnalyzer_Analyze(t *testing.T) {
	neutral := inference.Static{Label: "NEUTRAL", Score: 0.5}
	veryNegative := inference.Static{Label: "NEGATIVE", Score: 0.95}

	tests := []struct {
		name        string
		text        string
		sentiment   inference.Inferer
		prediction  model.Prediction
		confidence  float64
		reliability float64
		reasoning   []string
	}{
		{
			name:        "cited article",
			text:        citedText,
			sentiment:   neutral,
			prediction:  model.PredictionReal,
			confidence:  0.7,
			reliability: 7,
			reasoning:   []string{ReasonNoPatterns, ReasonStructured},
		},
		{
			name:        "sensational article",
			text:        strings.Repeat(sensationalText, 2),
			sentiment:   neutral,
			prediction:  model.PredictionFake,
			confidence:  0.8,
			reliability: 2,
			reasoning:   []string{"Multiple suspicious patterns detected (4 indicators)", ReasonUnstructured},
		},
		{
			name:        "three indicators is fake",
			text:        threeIndicatorText,
			sentiment:   neutral,
			prediction:  model.PredictionFake,
			confidence:  0.7,
			reliability: 2,
			reasoning:   []string{"Multiple suspicious patterns detected (3 indicators)", ReasonTooShort, ReasonStructured},
		},
		{
			name:        "two indicators stays below multiple",
			text:        twoIndicatorText,
			sentiment:   neutral,
			prediction:  model.PredictionFake,
			confidence:  0.2,
			reliability: 0,
			reasoning:   []string{"Some suspicious patterns found (2 indicators)", ReasonTooShort, ReasonUnstructured},
		},
		{
			name:        "long article without sources",
			text:        longCleanText,
			sentiment:   neutral,
			prediction:  model.PredictionReal,
			confidence:  0.65,
			reliability: 5,
			reasoning:   []string{"Some suspicious patterns found (1 indicators)", ReasonSubstantial, ReasonStructured},
		},
		{
			name:        "very negative long article",
			text:        longCleanText,
			sentiment:   veryNegative,
			prediction:  model.PredictionReal,
			confidence:  0.55,
			reliability: 3,
			reasoning:   []string{"Some suspicious patterns found (1 indicators)", ReasonNegative, ReasonSubstantial, ReasonStructured},
		},
		{
			name:        "low confidence forces fake",
			text:        shortCleanText,
			sentiment:   veryNegative,
			prediction:  model.PredictionFake,
			confidence:  0.35,
			reliability: 0.5,
			reasoning:   []string{"Some suspicious patterns found (1 indicators)", ReasonNegative, ReasonTooShort, ReasonStructured},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestAnalyzer(tt.sentiment).Analyze(context.Background(), tt.text)

			if res.Prediction != tt.prediction {
				t.Errorf("Prediction = %v, want %v", res.Prediction, tt.prediction)
			}
			if !approx(res.Confidence, tt.confidence) {
				t.Errorf("Confidence = %v, want %v", res.Confidence, tt.confidence)
			}
			if !approx(res.ReliabilityScore, tt.reliability) {
				t.Errorf("ReliabilityScore = %v, want %v", res.ReliabilityScore, tt.reliability)
			}
			if !reflect.DeepEqual(res.Reasoning, tt.reasoning) {
				t.Errorf("Reasoning = %q, want %q", res.Reasoning, tt.reasoning)
			}
			if res.ArticleLength != utf8.RuneCountInString(tt.text) {
				t.Errorf("ArticleLength = %d, want %d", res.ArticleLength, utf8.RuneCountInString(tt.text))
			}
			if res.ProcessingTime < 0 {
				t.Errorf("ProcessingTime = %d", res.ProcessingTime)
			}
		})
	}
}

func TestAnalyzer_Bounds(t *testing.T) {
	texts := []string{
		"",
		"!!!",
		"SHOCKING BREAKING URGENT SECRET TRUTH NOW!!! WAKE UP DEEP STATE BIG PHARMA MIRACLE CURE DOCTORS HATE",
		citedText,
		longCleanText,
		strings.Repeat("word ", 3000),
	}
	sentiments := []inference.Inferer{
		inference.Static{Label: "NEGATIVE", Score: 1},
		inference.Static{Label: "POSITIVE", Score: 1},
		inference.Static{Err: errors.New("offline")},
	}
	for _, s := range sentiments {
		a := newTestAnalyzer(s)
		for _, text := range texts {
			res := a.Analyze(context.Background(), text)
			if res.Confidence < 0.1 || res.Confidence > 0.95 {
				t.Errorf("Confidence %v out of range for %q", res.Confidence, text)
			}
			if res.ReliabilityScore < 0 || res.ReliabilityScore > 10 {
				t.Errorf("ReliabilityScore %v out of range for %q", res.ReliabilityScore, text)
			}
			if len(res.SuspiciousIndicators) >= 3 && res.Prediction != model.PredictionFake {
				t.Errorf("%d indicators but prediction %v", len(res.SuspiciousIndicators), res.Prediction)
			}
			if res.Confidence < 0.5 && res.Prediction != model.PredictionFake {
				t.Errorf("confidence %v but prediction %v", res.Confidence, res.Prediction)
			}
		}
	}
}

func TestAnalyzer_SentimentFailureIsNeutral(t *testing.T) {
	a := newTestAnalyzer(inference.Static{Err: errors.New("pipeline crashed")})

	res := a.Analyze(context.Background(), citedText)
	if res.Reasoning[0] == ReasonFallback {
		t.Fatal("sentiment failure must not trigger the fallback path")
	}
	if !approx(res.ReliabilityScore, 7) {
		t.Errorf("ReliabilityScore = %v, want 7", res.ReliabilityScore)
	}
}

func TestAnalyzer_SentimentGetsTruncatedText(t *testing.T) {
	var got string
	a := newTestAnalyzer(inference.InfererFunc(func(ctx context.Context, text string) (inference.Prediction, error) {
		got = text
		return inference.Prediction{Label: "POSITIVE", Score: 0.9}, nil
	}))

	text := "   " + strings.Repeat("é", 1500)
	res := a.Analyze(context.Background(), text)

	if utf8.RuneCountInString(got) != maxModelInput {
		t.Errorf("sentiment input length = %d, want %d", utf8.RuneCountInString(got), maxModelInput)
	}
	if strings.HasPrefix(got, " ") {
		t.Error("sentiment input was not trimmed")
	}
	if res.ArticleLength != 1503 {
		t.Errorf("ArticleLength = %d, want 1503", res.ArticleLength)
	}
}

func TestAnalyzer_InvalidSentimentIsNeutral(t *testing.T) {
	a := newTestAnalyzer(inference.Static{Label: "NEGATIVE", Score: 7})
	res := a.Analyze(context.Background(), longCleanText)
	for _, r := range res.Reasoning {
		if r == ReasonNegative {
			t.Error("out-of-range sentiment score was not discarded")
		}
	}
}

func TestAnalyzer_CancelledContextSkipsSentiment(t *testing.T) {
	called := false
	a := NewAnalyzer(loadedClassifier(), inference.InfererFunc(func(ctx context.Context, text string) (inference.Prediction, error) {
		called = true
		return inference.Prediction{Label: "NEGATIVE", Score: 1}, nil
	}), WithLogger(quietLogger()), WithLimiter(NewLimiter(config.ConcurrencyConfig{QPS: 1, RPM: 1})))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := a.Analyze(ctx, citedText)

	if called {
		t.Error("sentiment was called with a cancelled context")
	}
	if res.Reasoning[0] != ReasonNoPatterns {
		t.Errorf("Reasoning = %q", res.Reasoning)
	}
}

func TestAnalyzer_Fallback(t *testing.T) {
	broken := inference.NewLazy(func(ctx context.Context) (inference.Inferer, error) {
		return nil, errors.New("model download failed")
	})

	tests := []struct {
		name        string
		text        string
		prediction  model.Prediction
		confidence  float64
		reliability float64
	}{
		{"suspicious", strings.Repeat(sensationalText, 2), model.PredictionFake, 0.75, 3.5},
		{"two indicators", twoIndicatorText, model.PredictionFake, 0.75, 3.5},
		{"one indicator", longCleanText, model.PredictionReal, 0.6, 6.5},
		{"clean", citedText, model.PredictionReal, 0.6, 6.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer(broken, inference.Static{Label: "NEUTRAL", Score: 0.5}, WithLogger(quietLogger()))
			res := a.Analyze(context.Background(), tt.text)

			if !reflect.DeepEqual(res.Reasoning, []string{ReasonFallback}) {
				t.Errorf("Reasoning = %q", res.Reasoning)
			}
			if res.Prediction != tt.prediction || res.Confidence != tt.confidence || res.ReliabilityScore != tt.reliability {
				t.Errorf("got %v/%v/%v, want %v/%v/%v", res.Prediction, res.Confidence, res.ReliabilityScore,
					tt.prediction, tt.confidence, tt.reliability)
			}
			if !reflect.DeepEqual(res.SuspiciousIndicators, DetectSuspiciousPatterns(tt.text)) {
				t.Errorf("SuspiciousIndicators = %v", res.SuspiciousIndicators)
			}
		})
	}
}

func TestAnalyzer_PanicFallsBack(t *testing.T) {
	a := newTestAnalyzer(inference.InfererFunc(func(ctx context.Context, text string) (inference.Prediction, error) {
		panic("tensor shape mismatch")
	}))

	res := a.Analyze(context.Background(), citedText)
	if !reflect.DeepEqual(res.Reasoning, []string{ReasonFallback}) {
		t.Errorf("Reasoning = %q, want fallback", res.Reasoning)
	}
	if res.ReliabilityScore != 6.5 {
		t.Errorf("ReliabilityScore = %v, want 6.5", res.ReliabilityScore)
	}
}

func TestAnalyzer_ClassifierLoadedOnce(t *testing.T) {
	loads := 0
	classifier := inference.NewLazy(func(ctx context.Context) (inference.Inferer, error) {
		loads++
		return inference.Static{}, nil
	})
	a := NewAnalyzer(classifier, inference.Static{Label: "NEUTRAL", Score: 0.5}, WithLogger(quietLogger()))

	a.Analyze(context.Background(), citedText)
	a.Analyze(context.Background(), longCleanText)

	if loads != 1 {
		t.Errorf("classifier loads = %d, want 1", loads)
	}
}

func TestNewFromConfig_Default(t *testing.T) {
	a := NewFromConfig(config.Default(), quietLogger())
	res := a.Analyze(context.Background(), citedText)
	if res.Prediction != model.PredictionReal || res.Reasoning[0] != ReasonNoPatterns {
		t.Errorf("result = %+v", res)
	}
}

func TestNewFromConfig_Limiter(t *testing.T) {
	if a := NewFromConfig(config.Default(), quietLogger()); a.limiter != nil {
		t.Error("static sentiment should not be rate limited")
	}

	cfg := config.Default()
	cfg.Sentiment = config.ModelConfig{Provider: config.ProviderHuggingFace, Model: "sst-2"}
	if a := NewFromConfig(cfg, quietLogger()); a.limiter == nil {
		t.Error("remote sentiment should be rate limited")
	}
}

func TestNewFromConfig_DefaultConcurrentCalls(t *testing.T) {
	a := NewFromConfig(config.Default(), quietLogger())

	var wg sync.WaitGroup
	results := make([]*model.AnalysisResult, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = a.Analyze(context.Background(), citedText)
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		if res.Reasoning[0] != ReasonNoPatterns {
			t.Errorf("call %d: Reasoning = %q", i, res.Reasoning)
		}
	}
}

func TestHasProperStructure(t *testing.T) {
	tests := map[string]bool{
		"Hello, world.":          true,
		"HELLO, WORLD.":          false,
		"No comma here.":         false,
		"no period, here":        false,
		"PRICES ROSE 5%, AGAIN.": true,
	}
	for in, want := range tests {
		if got := hasProperStructure(in); got != want {
			t.Errorf("hasProperStructure(%q) = %v, want %v", in, got, want)
		}
	}
}
