package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/config"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/detector"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/fetch"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/logger"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/samples"
)

// minContentLength 与 HTTP 接口的校验保持一致
const minContentLength = 50

var (
	flagconf   = flag.String("conf", "", "config path, empty for offline defaults")
	flagFile   = flag.String("file", "", "read article content from file")
	flagURL    = flag.String("url", "", "fetch article from url")
	flagSample = flag.String("sample", "", "analyze built-in sample article by id")
	flagTitle  = flag.String("title", "", "article title")
)

var (
	errContentRequired = errors.New("article content is required")
	errContentTooShort = fmt.Errorf("article content must be at least %d characters", minContentLength)
)

// Output 命令行输出
type Output struct {
	Title    string                `json:"title,omitempty"`
	Source   string                `json:"source,omitempty"`
	Result   *model.AnalysisResult `json:"result"`
	Expected model.Prediction      `json:"expected,omitempty"`
	Match    *bool                 `json:"match,omitempty"`
}

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg := config.Default()
	if *flagconf != "" {
		c, err := config.LoadConfig(*flagconf)
		if err != nil {
			log.Fatalf("无法加载配置文件: %v", err)
		}
		cfg = c
	}

	// 2. 初始化日志，标准输出留给结果
	if err := logger.InitLogger(os.Stderr, cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}

	// 3. 准备文章
	out := &Output{Title: *flagTitle}
	var content string
	switch {
	case *flagSample != "":
		s, ok := samples.Get(*flagSample)
		if !ok {
			log.Fatalf("示例文章不存在: %s", *flagSample)
		}
		out.Title, out.Source, out.Expected = s.Title, s.Source, s.ExpectedResult
		content = s.Content
	case *flagURL != "":
		art, err := fetch.NewFetcher(cfg.Fetch.Timeout, fetch.AllowPrivateHosts(cfg.Fetch.AllowPrivate)).Fetch(*flagURL)
		if err != nil {
			log.Fatalf("抓取文章失败: %v", err)
		}
		if out.Title == "" {
			out.Title = art.Title
		}
		out.Source = art.Link
		content = art.Content
	case *flagFile != "":
		f, err := os.Open(*flagFile)
		if err != nil {
			log.Fatalf("无法读取文件: %v", err)
		}
		content, err = readContent(f)
		f.Close()
		if err != nil {
			log.Fatalf("文件内容无效: %v", err)
		}
	default:
		c, err := readContent(os.Stdin)
		if err != nil {
			log.Fatalf("标准输入内容无效: %v", err)
		}
		content = c
	}

	if err := checkContent(content); err != nil {
		log.Fatalf("输入无效: %v", err)
	}

	// 4. 分析
	analyzer := detector.NewFromConfig(cfg, logger.Log)
	out.Result = analyzer.Analyze(context.Background(), strings.TrimSpace(out.Title+" "+content))
	if out.Expected != "" {
		match := out.Result.Prediction == out.Expected
		out.Match = &match
	}
	logger.Log.Infof("分析完成: prediction=%s reliability=%.1f", out.Result.Prediction, out.Result.ReliabilityScore)

	// 5. 输出结果
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("输出结果失败: %v", err)
	}
}

// readContent 读取全部输入并校验正文
func readContent(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	content := string(b)
	return content, checkContent(content)
}

// checkContent 与 HTTP 接口相同的正文校验
func checkContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return errContentRequired
	}
	if utf8.RuneCountInString(trimmed) < minContentLength {
		return errContentTooShort
	}
	return nil
}
