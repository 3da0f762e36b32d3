package repo

import (
	"context"

	"github.com/iWorld-y/fake_news_detector/app/detector/internal/domain"
)

// HistoryRepo 分析历史仓库接口
type HistoryRepo interface {
	// SaveRecord 保存一次分析，成功后回填 ID 与 CreatedAt
	SaveRecord(ctx context.Context, record *domain.AnalysisRecord) error
	// ListRecent 按时间倒序返回最近的分析记录
	ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRecord, error)
}
