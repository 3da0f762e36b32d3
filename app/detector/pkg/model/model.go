package model

// Prediction 真假判定标签
type Prediction string

const (
	PredictionReal Prediction = "REAL"
	PredictionFake Prediction = "FAKE"
)

// Sentiment 情感分析标签
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
)

// Sentiment 情感分析结果
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// NeutralSentiment 情感分析失败时使用的默认值
var NeutralSentiment = Sentiment{Label: SentimentNeutral, Score: 0.5}

// AnalysisResult 单次文章分析结果，每次调用都会重新生成
type AnalysisResult struct {
	Prediction           Prediction `json:"prediction"`
	Confidence           float64    `json:"confidence"`
	Reasoning            []string   `json:"reasoning"`
	ProcessingTime       int64      `json:"processingTime"` // 毫秒
	ArticleLength        int        `json:"articleLength"`
	SuspiciousIndicators []string   `json:"suspiciousIndicators"`
	ReliabilityScore     float64    `json:"reliabilityScore"`
}

// SampleArticle 内置示例文章
type SampleArticle struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Source         string     `json:"source"`
	Category       string     `json:"category"`
	ExpectedResult Prediction `json:"expectedResult"`
}

// Article 从 URL 抓取的文章正文
type Article struct {
	Title    string
	Link     string
	SiteName string
	Content  string
}
