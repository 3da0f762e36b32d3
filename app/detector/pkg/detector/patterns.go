package detector

import (
	"regexp"
	"strings"
)

// 指标文案
const (
	IndicatorSensational = "Contains sensational or emotional language"
	IndicatorUrgency     = "Uses urgency tactics"
	IndicatorConspiracy  = "Contains conspiracy theory language"
	IndicatorMedical     = "Makes unverified medical claims"
	IndicatorPunctuation = "Excessive use of punctuation"
	IndicatorCapitals    = "Overuse of capitalized words"
	IndicatorNoSources   = "Lacks credible source citations"
)

var (
	emotionalWords  = []string{"shocking", "unbelievable", "miraculous", "secret", "hidden truth", "they dont want you to know"}
	urgencyWords    = []string{"breaking", "urgent", "act now", "limited time", "before its too late"}
	conspiracyWords = []string{"government cover", "big pharma", "mainstream media", "deep state", "wake up"}
	medicalClaims   = []string{"miracle cure", "doctors hate", "big pharma doesnt want", "natural remedy"}
	sourcePhrases   = []string{"according to", "study shows", "research indicates", "published in", "source:"}

	repeatedPunct = regexp.MustCompile(`!{3,}|\?{3,}`)
	capsWord      = regexp.MustCompile(`\b[A-Z]{3,}\b`)
)

// maxCapsWords 超过该数量的不同全大写单词视为滥用
const maxCapsWords = 5

// DetectSuspiciousPatterns 按固定顺序检查文本，返回命中的可疑指标
func DetectSuspiciousPatterns(text string) []string {
	indicators := make([]string, 0, 7)
	lowerText := strings.ToLower(text)

	if containsAny(lowerText, emotionalWords) {
		indicators = append(indicators, IndicatorSensational)
	}
	if containsAny(lowerText, urgencyWords) {
		indicators = append(indicators, IndicatorUrgency)
	}
	if containsAny(lowerText, conspiracyWords) {
		indicators = append(indicators, IndicatorConspiracy)
	}
	if containsAny(lowerText, medicalClaims) {
		indicators = append(indicators, IndicatorMedical)
	}
	if repeatedPunct.MatchString(text) {
		indicators = append(indicators, IndicatorPunctuation)
	}
	if countDistinctCaps(text) > maxCapsWords {
		indicators = append(indicators, IndicatorCapitals)
	}
	// 唯一一个在“缺失”时触发的检查
	if !containsAny(lowerText, sourcePhrases) {
		indicators = append(indicators, IndicatorNoSources)
	}

	return indicators
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func countDistinctCaps(text string) int {
	seen := make(map[string]struct{})
	for _, w := range capsWord.FindAllString(text, -1) {
		seen[w] = struct{}{}
	}
	return len(seen)
}
