package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"
)

// Prediction 模型推理输出
type Prediction struct {
	Label string
	Score float64
}

// Inferer 外部推理能力的最小接口：给定文本返回标签与分数
type Inferer interface {
	Infer(ctx context.Context, text string) (Prediction, error)
}

// InfererFunc 将普通函数适配为 Inferer
type InfererFunc func(ctx context.Context, text string) (Prediction, error)

// Infer implements Inferer
func (f InfererFunc) Infer(ctx context.Context, text string) (Prediction, error) {
	return f(ctx, text)
}

// Factory 创建（加载）一个推理端点，可能较慢
type Factory func(ctx context.Context) (Inferer, error)

// Lazy 惰性初始化的推理端点句柄。
// 首次 Get 执行加载，成功后在整个生命周期内复用；失败不缓存，下次调用会重试。
type Lazy struct {
	factory Factory

	mu   sync.Mutex
	inst Inferer
}

var _ Inferer = (*Lazy)(nil)

// NewLazy 创建惰性句柄
func NewLazy(factory Factory) *Lazy {
	return &Lazy{factory: factory}
}

// Get 返回已加载的端点，必要时执行加载
func (l *Lazy) Get(ctx context.Context) (Inferer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inst != nil {
		return l.inst, nil
	}
	inst, err := l.factory(ctx)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, errors.New("factory returned nil inferer")
	}
	l.inst = inst
	return inst, nil
}

// Loaded 是否已完成加载
func (l *Lazy) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inst != nil
}

// FirstOf 依次尝试多个 Factory，返回第一个成功加载的端点
func FirstOf(factories ...Factory) Factory {
	return func(ctx context.Context) (Inferer, error) {
		var errs []error
		for i, f := range factories {
			inst, err := f(ctx)
			if err == nil {
				return inst, nil
			}
			errs = append(errs, fmt.Errorf("factory %d: %w", i, err))
		}
		if len(errs) == 0 {
			return nil, errors.New("no factory configured")
		}
		return nil, errors.Join(errs...)
	}
}

// Static 固定输出的推理端点，用于离线运行与测试
type Static struct {
	Label string
	Score float64
	Err   error
}

// Infer implements Inferer
func (s Static) Infer(ctx context.Context, text string) (Prediction, error) {
	if s.Err != nil {
		return Prediction{}, s.Err
	}
	return Prediction{Label: s.Label, Score: s.Score}, nil
}

// NormalizeLabel 统一情感标签，兼容 LABEL_0/LABEL_1 与大小写差异
func NormalizeLabel(label string) string {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "POSITIVE", "POS", "LABEL_1":
		return model.SentimentPositive
	case "NEGATIVE", "NEG", "LABEL_0":
		return model.SentimentNegative
	case "NEUTRAL", "NEU":
		return model.SentimentNeutral
	default:
		return ""
	}
}

// Infer 加载（如有必要）后执行推理，使 Lazy 本身也是一个 Inferer
func (l *Lazy) Infer(ctx context.Context, text string) (Prediction, error) {
	inst, err := l.Get(ctx)
	if err != nil {
		return Prediction{}, err
	}
	return inst.Infer(ctx, text)
}
