package fetch

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"
)

// ErrBlockedAddress 目标地址属于回环、内网或链路本地网段
var ErrBlockedAddress = errors.New("blocked address")

// Fetcher 抓取网页并提取正文
type Fetcher struct {
	timeout      time.Duration
	allowPrivate bool
	client       *http.Client
}

// Option 抓取器可选项
type Option func(*Fetcher)

// AllowPrivateHosts 允许访问内网与回环地址，仅用于本地部署
func AllowPrivateHosts(allow bool) Option {
	return func(f *Fetcher) { f.allowPrivate = allow }
}

// NewFetcher 创建抓取器，timeout 单位为秒
func NewFetcher(timeout int, opts ...Option) *Fetcher {
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 30 * time.Second
	}
	f := &Fetcher{timeout: t}
	for _, o := range opts {
		o(f)
	}

	dialer := &net.Dialer{Timeout: t}
	if !f.allowPrivate {
		dialer.Control = checkAddress
	}
	// 不走代理，保证拨号地址即目标地址，重定向同样经过校验
	f.client = &http.Client{
		Timeout:   t,
		Transport: &http.Transport{DialContext: dialer.DialContext},
	}
	return f
}

// Fetch 抓取并清洗文章正文
func (f *Fetcher) Fetch(rawURL string) (*model.Article, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid article url: %q", rawURL)
	}

	resp, err := f.client.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch article: unexpected status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("fetch article: unsupported content type %q", ct)
	}

	article, err := readability.FromReader(resp.Body, u)
	if err != nil {
		return nil, fmt.Errorf("parse article: %w", err)
	}

	content := strings.TrimSpace(article.TextContent)
	if content == "" {
		return nil, fmt.Errorf("no readable content at %s", rawURL)
	}
	return &model.Article{
		Title:    strings.TrimSpace(article.Title),
		Link:     u.String(),
		SiteName: article.SiteName,
		Content:  content,
	}, nil
}

// checkAddress 在建立连接前校验解析后的 IP
func checkAddress(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip := net.ParseIP(host)
	if ip == nil || isBlocked(ip) {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, host)
	}
	return nil
}

func isBlocked(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsMulticast() ||
		ip.IsUnspecified()
}
