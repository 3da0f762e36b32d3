package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/config"
)

// Task LLM 推理任务类型
type Task string

const (
	TaskSentiment      Task = "sentiment-analysis"
	TaskClassification Task = "text-classification"
)

const sentimentPrompt = `You are a sentiment classifier for news text.
Return ONLY a JSON object, without markdown, in this exact format:
{"label": "POSITIVE" | "NEGATIVE" | "NEUTRAL", "score": <confidence between 0 and 1>}

Text:
%s`

const classificationPrompt = `You are a toxic comment classifier.
Return ONLY a JSON object, without markdown, in this exact format:
{"label": "TOXIC" | "NON_TOXIC", "score": <confidence between 0 and 1>}

Text:
%s`

// Generator eino ChatModel 中推理所需的部分
type Generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// LLM 基于 OpenAI 兼容接口的推理端点
type LLM struct {
	gen        Generator
	task       Task
	maxRetries int
	baseDelay  time.Duration
}

var _ Inferer = (*LLM)(nil)

// NewLLM 初始化 eino OpenAI ChatModel 并包装为 Inferer
func NewLLM(ctx context.Context, cfg config.ModelConfig, task Task) (*LLM, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm model name is missing")
	}
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	return NewLLMWithGenerator(chatModel, task), nil
}

// NewLLMWithGenerator 使用已有的 Generator 创建推理端点
func NewLLMWithGenerator(gen Generator, task Task) *LLM {
	return &LLM{
		gen:        gen,
		task:       task,
		maxRetries: 3,
		baseDelay:  2 * time.Second,
	}
}

// Infer implements Inferer
func (l *LLM) Infer(ctx context.Context, text string) (Prediction, error) {
	tpl := sentimentPrompt
	if l.task == TaskClassification {
		tpl = classificationPrompt
	}
	messages := []*schema.Message{
		{Role: schema.System, Content: "你是一个 JSON 生成器。请只输出 JSON 字符串。"},
		{Role: schema.User, Content: fmt.Sprintf(tpl, text)},
	}

	var lastErr error
	for i := 0; i <= l.maxRetries; i++ {
		resp, err := l.gen.Generate(ctx, messages)
		if err != nil {
			if isRateLimited(err) && i < l.maxRetries {
				lastErr = err
				if err := sleep(ctx, l.baseDelay*time.Duration(1<<i)); err != nil {
					return Prediction{}, err
				}
				continue
			}
			return Prediction{}, err
		}

		pred, err := parsePrediction(resp.Content)
		if err != nil {
			lastErr = err
			continue
		}
		if l.task == TaskSentiment {
			label := NormalizeLabel(pred.Label)
			if label == "" {
				lastErr = fmt.Errorf("unknown sentiment label %q", pred.Label)
				continue
			}
			pred.Label = label
		}
		return pred, nil
	}
	return Prediction{}, fmt.Errorf("failed after retries: %w", lastErr)
}

func parsePrediction(content string) (Prediction, error) {
	cleanContent := strings.TrimSpace(content)
	cleanContent = strings.TrimPrefix(cleanContent, "```json")
	cleanContent = strings.TrimPrefix(cleanContent, "```")
	cleanContent = strings.TrimSuffix(cleanContent, "```")

	var out struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(cleanContent)), &out); err != nil {
		return Prediction{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if out.Score < 0 || out.Score > 1 {
		return Prediction{}, fmt.Errorf("score out of range: %v", out.Score)
	}
	return Prediction{Label: out.Label, Score: out.Score}, nil
}

func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "too many requests")
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
