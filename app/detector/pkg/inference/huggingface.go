package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultHFBaseURL = "https://api-inference.huggingface.co"

// HuggingFace Hugging Face Inference API 客户端
type HuggingFace struct {
	baseURL   string
	apiKey    string
	modelName string
	task      Task
	client    *http.Client
}

var _ Inferer = (*HuggingFace)(nil)

// NewHuggingFace 创建一个新的 Hugging Face 客户端
func NewHuggingFace(baseURL, apiKey, modelName string, timeout int, task Task) (*HuggingFace, error) {
	if modelName == "" {
		return nil, fmt.Errorf("huggingface model name is missing")
	}
	if baseURL == "" {
		baseURL = defaultHFBaseURL
	}
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 30 * time.Second
	}
	return &HuggingFace{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		modelName: modelName,
		task:      task,
		client:    &http.Client{Timeout: t},
	}, nil
}

// InferenceRequest Inference API 请求体
type InferenceRequest struct {
	Inputs string `json:"inputs"`
}

// LabelScore Inference API 单个标签结果
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Infer implements Inferer
func (c *HuggingFace) Infer(ctx context.Context, text string) (Prediction, error) {
	payload, err := json.Marshal(InferenceRequest{Inputs: text})
	if err != nil {
		return Prediction{}, fmt.Errorf("marshal request failed: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.modelName)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Prediction{}, fmt.Errorf("create request failed: %w", err)
	}
	if c.apiKey != "" {
		httpReq.Header.Add("Authorization", "Bearer "+c.apiKey)
	}
	httpReq.Header.Add("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return Prediction{}, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Prediction{}, fmt.Errorf("read body failed: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return Prediction{}, fmt.Errorf("huggingface api error (status %d): %s", res.StatusCode, string(body))
	}

	scores, err := decodeScores(body)
	if err != nil {
		return Prediction{}, err
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}

	pred := Prediction{Label: best.Label, Score: best.Score}
	if c.task == TaskSentiment {
		label := NormalizeLabel(best.Label)
		if label == "" {
			return Prediction{}, fmt.Errorf("unknown sentiment label %q", best.Label)
		}
		pred.Label = label
	}
	return pred, nil
}

// decodeScores 兼容 [[{label,score}]] 与 [{label,score}] 两种返回格式
func decodeScores(body []byte) ([]LabelScore, error) {
	var nested [][]LabelScore
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}
	var flat []LabelScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}
	if len(flat) == 0 {
		return nil, fmt.Errorf("empty inference response")
	}
	return flat, nil
}
