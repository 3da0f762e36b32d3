package data

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/lib/pq"

	"github.com/iWorld-y/fake_news_detector/app/detector/internal/domain"
	"github.com/iWorld-y/fake_news_detector/app/detector/internal/repo"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"
)

type historyRepo struct {
	data *Data
	log  *log.Helper
}

func NewHistoryRepo(data *Data, logger log.Logger) repo.HistoryRepo {
	return &historyRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *historyRepo) SaveRecord(ctx context.Context, record *domain.AnalysisRecord) error {
	if !r.data.Enabled() || record.Result == nil {
		return nil
	}
	res := record.Result
	return r.data.db.QueryRowContext(ctx, `
		INSERT INTO analysis_records
			(title, source, prediction, confidence, reasoning, processing_time,
			 article_length, suspicious_indicators, reliability_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		sanitize(record.Title),
		sanitize(record.Source),
		string(res.Prediction),
		res.Confidence,
		pq.Array(res.Reasoning),
		res.ProcessingTime,
		res.ArticleLength,
		pq.Array(res.SuspiciousIndicators),
		res.ReliabilityScore,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *historyRepo) ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRecord, error) {
	if !r.data.Enabled() {
		return []*domain.AnalysisRecord{}, nil
	}
	rows, err := r.data.db.QueryContext(ctx, `
		SELECT id, title, source, prediction, confidence, reasoning, processing_time,
		       article_length, suspicious_indicators, reliability_score, created_at
		FROM analysis_records
		ORDER BY id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.AnalysisRecord, 0, limit)
	for rows.Next() {
		var (
			rec        domain.AnalysisRecord
			res        model.AnalysisResult
			prediction string
		)
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Source, &prediction, &res.Confidence,
			pq.Array(&res.Reasoning), &res.ProcessingTime, &res.ArticleLength,
			pq.Array(&res.SuspiciousIndicators), &res.ReliabilityScore, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		res.Prediction = model.Prediction(prediction)
		rec.Result = &res
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// sanitize 移除无效 UTF-8 与 NULL 字符，PostgreSQL 文本字段不支持 NULL 字节
func sanitize(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	return strings.ReplaceAll(s, "\x00", "")
}
