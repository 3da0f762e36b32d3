package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log 全局日志实例，由 InitLogger 初始化
var Log = logrus.StandardLogger()

// CustomFormatter 日志格式: [TIME] [LEVEL] [FILE:LINE] MSG key=value...
type CustomFormatter struct{}

// Format 实现 logrus.Formatter 接口
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var fileLine string
	if entry.HasCaller() {
		fileLine = fmt.Sprintf("%s:%d", filepath.Base(entry.Caller.File), entry.Caller.Line)
	}

	// 对齐级别长度，例如 INFO, WARN, ERRO
	level := strings.ToUpper(entry.Level.String())
	if len(level) > 4 {
		level = level[:4]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] [%s] [%s] %s", entry.Time.Format("2006-01-02 15:04:05"), level, fileLine, entry.Message)
	for _, k := range sortedKeys(entry.Data) {
		fmt.Fprintf(&sb, " %s=%v", k, entry.Data[k])
	}
	sb.WriteByte('\n')

	return []byte(sb.String()), nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewLogger 创建日志实例，filePath 非空时同时输出到文件
func NewLogger(levelStr string, filePath string) (*logrus.Logger, error) {
	return NewLoggerWithOutput(os.Stdout, levelStr, filePath)
}

// NewLoggerWithOutput 与 NewLogger 相同，但控制台输出写入 out
func NewLoggerWithOutput(out io.Writer, levelStr string, filePath string) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetReportCaller(true)
	l.SetFormatter(&CustomFormatter{})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel // 默认级别
	}
	l.SetLevel(level)

	writers := []io.Writer{out}
	if filePath != "" {
		logDir := filepath.Dir(filePath)
		if logDir != "." {
			if err := os.MkdirAll(logDir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}

		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, err
		}
		writers = append(writers, file)
	}
	l.SetOutput(io.MultiWriter(writers...))

	return l, nil
}

// InitLogger 初始化全局日志，控制台输出写入 out
func InitLogger(out io.Writer, levelStr string, filePath string) error {
	l, err := NewLoggerWithOutput(out, levelStr, filePath)
	if err != nil {
		return err
	}
	Log = l
	return nil
}
