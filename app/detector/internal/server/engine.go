package server

import (
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fake_news_detector/app/detector/internal/conf"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/config"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/detector"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/fetch"
	dtLogger "github.com/iWorld-y/fake_news_detector/app/detector/pkg/logger"
)

// NewEngineConfig 将 internal/conf.Detector 转换为 pkg/config.Config，未填写的部分沿用默认值
func NewEngineConfig(c *conf.Detector) *config.Config {
	cfg := config.Default()
	if c == nil {
		return cfg
	}

	if c.Classifier != nil {
		cfg.Classifier.ModelConfig = modelConfig(&c.Classifier.Endpoint)
		if c.Classifier.Fallback != nil {
			fb := modelConfig(c.Classifier.Fallback)
			cfg.Classifier.Fallback = &fb
		}
	}
	if c.Sentiment != nil {
		cfg.Sentiment = modelConfig(c.Sentiment)
	}
	if c.Log != nil {
		cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Concurrency != nil {
		cfg.Concurrency = config.ConcurrencyConfig{
			QPS: int(c.Concurrency.Qps),
			RPM: int(c.Concurrency.Rpm),
		}
	}
	if c.Fetch != nil {
		cfg.Fetch = config.FetchConfig{
			Timeout:      int(c.Fetch.Timeout),
			AllowPrivate: c.Fetch.AllowPrivate,
		}
	}
	return cfg
}

func modelConfig(e *conf.Endpoint) config.ModelConfig {
	return config.ModelConfig{
		Provider: e.Provider,
		BaseURL:  e.BaseUrl,
		APIKey:   e.ApiKey,
		Model:    e.Model,
		Timeout:  int(e.Timeout),
		Label:    e.Label,
		Score:    e.Score,
	}
}

// NewDetectorEngine 初始化检测引擎，模型在首次分析时才加载
func NewDetectorEngine(c *conf.Detector, logger log.Logger) *detector.Analyzer {
	cfg := NewEngineConfig(c)
	helper := log.NewHelper(logger)

	engineLog, err := dtLogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		helper.Errorf("Failed to init detector logger: %v", err)
		engineLog, _ = dtLogger.NewLogger("info", "") // 降级处理
	}

	helper.Infof("检测引擎初始化: classifier=%s sentiment=%s", cfg.Classifier.Provider, cfg.Sentiment.Provider)
	return detector.NewFromConfig(cfg, engineLog)
}

// NewArticleFetcher 初始化文章抓取器
func NewArticleFetcher(c *conf.Detector) *fetch.Fetcher {
	fc := NewEngineConfig(c).Fetch
	return fetch.NewFetcher(fc.Timeout, fetch.AllowPrivateHosts(fc.AllowPrivate))
}
