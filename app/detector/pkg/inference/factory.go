package inference

import (
	"context"
	"fmt"

	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/config"
)

// NewInferer 根据配置创建推理端点
func NewInferer(ctx context.Context, cfg config.ModelConfig, task Task) (Inferer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewLLM(ctx, cfg, task)

	case config.ProviderHuggingFace:
		return NewHuggingFace(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout, task)

	case config.ProviderStatic:
		label := cfg.Label
		if task == TaskSentiment {
			label = NormalizeLabel(label)
			if label == "" {
				return nil, fmt.Errorf("static sentiment label %q is invalid", cfg.Label)
			}
		}
		return Static{Label: label, Score: cfg.Score}, nil

	case "":
		return nil, fmt.Errorf("inference provider not configured")

	default:
		return nil, fmt.Errorf("unknown inference provider: %s", cfg.Provider)
	}
}

// NewFactory 返回按配置加载推理端点的 Factory
func NewFactory(cfg config.ModelConfig, task Task) Factory {
	return func(ctx context.Context) (Inferer, error) {
		return NewInferer(ctx, cfg, task)
	}
}

// NewClassifierFactory 分类模型优先使用主配置，失败时回退到 Fallback
func NewClassifierFactory(cfg config.ClassifierConfig) Factory {
	primary := NewFactory(cfg.ModelConfig, TaskClassification)
	if cfg.Fallback == nil {
		return primary
	}
	return FirstOf(primary, NewFactory(*cfg.Fallback, TaskClassification))
}
