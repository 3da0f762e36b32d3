package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Provider 可选的模型提供方
const (
	ProviderOpenAI      = "openai"
	ProviderHuggingFace = "huggingface"
	ProviderStatic      = "static"
)

// Config 检测引擎配置结构体
type Config struct {
	Classifier  ClassifierConfig  `yaml:"classifier"`
	Sentiment   ModelConfig       `yaml:"sentiment"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Fetch       FetchConfig       `yaml:"fetch"`
}

// ClassifierConfig 文本分类模型配置，Fallback 在主模型初始化失败时使用
type ClassifierConfig struct {
	ModelConfig `yaml:",inline"`
	Fallback    *ModelConfig `yaml:"fallback"`
}

// ModelConfig 单个推理端点配置
type ModelConfig struct {
	Provider string  `yaml:"provider"`
	BaseURL  string  `yaml:"base_url"`
	APIKey   string  `yaml:"api_key"`
	Model    string  `yaml:"model"`
	Timeout  int     `yaml:"timeout"` // 秒
	Label    string  `yaml:"label"`   // 仅 static
	Score    float64 `yaml:"score"`   // 仅 static
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 模型调用限流配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// FetchConfig 文章抓取配置
type FetchConfig struct {
	Timeout      int  `yaml:"timeout"`       // 秒
	AllowPrivate bool `yaml:"allow_private"` // 允许抓取内网、回环地址
}

// Default 返回无需外部服务的默认配置
func Default() *Config {
	return &Config{
		Classifier: ClassifierConfig{
			ModelConfig: ModelConfig{Provider: ProviderStatic, Label: "LABEL_0", Score: 1},
		},
		Sentiment:   ModelConfig{Provider: ProviderStatic, Label: "NEUTRAL", Score: 0.5},
		Log:         LogConfig{Level: "info"},
		Concurrency: ConcurrencyConfig{QPS: 5, RPM: 300},
		Fetch:       FetchConfig{Timeout: 30},
	}
}

// LoadConfig 从指定路径加载配置，未填写的字段沿用默认值
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
