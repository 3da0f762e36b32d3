package detector

import (
	"math"

	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"
)

// ReliabilityScore 综合置信度、可疑指标数量、情感与长度计算 0-10 的可信度评分
func ReliabilityScore(confidence float64, suspiciousCount int, sentiment model.Sentiment, textLength int) float64 {
	score := confidence * 10

	// 每个可疑指标扣 1.5 分
	score -= float64(suspiciousCount) * 1.5

	// 极端负面情感
	if sentiment.Label == model.SentimentNegative && sentiment.Score > 0.8 {
		score -= 1
	}

	// 过短或过长的文章
	if textLength < 100 || textLength > 10000 {
		score -= 0.5
	}

	return clamp(score, 0, 10)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundTenth 保留一位小数
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
