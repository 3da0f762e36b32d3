package data

import (
	"database/sql"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	_ "github.com/lib/pq"

	"github.com/iWorld-y/fake_news_detector/app/detector/internal/conf"
)

// Data 数据访问资源，未配置数据库时 db 为 nil，历史记录功能关闭
type Data struct {
	db *sql.DB
}

func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)
	if c == nil || c.Database == nil || c.Database.Source == "" {
		helper.Info("未配置数据库，历史记录功能关闭")
		return &Data{}, func() {}, nil
	}

	driver := c.Database.Driver
	if driver == "" {
		driver = "postgres"
	}
	db, err := sql.Open(driver, c.Database.Source)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS analysis_records (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT '',
			prediction TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			reasoning TEXT[] NOT NULL,
			processing_time BIGINT NOT NULL,
			article_length INTEGER NOT NULL,
			suspicious_indicators TEXT[] NOT NULL,
			reliability_score DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to init analysis_records table: %w", err)
	}

	cleanup := func() {
		helper.Info("closing the data resources")
		db.Close()
	}
	return &Data{db: db}, cleanup, nil
}

// Enabled 是否连接了数据库
func (d *Data) Enabled() bool {
	return d != nil && d.db != nil
}
