package data

import (
	"context"
	"testing"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fake_news_detector/app/detector/internal/conf"
	"github.com/iWorld-y/fake_news_detector/app/detector/internal/domain"
	"github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"
)

func TestNewData_WithoutDatabase(t *testing.T) {
	for _, c := range []*conf.Data{nil, {}, {Database: &conf.Database{Driver: "postgres"}}} {
		d, cleanup, err := NewData(c, log.DefaultLogger)
		if err != nil {
			t.Fatalf("NewData(%+v) error = %v", c, err)
		}
		cleanup()
		if d.Enabled() {
			t.Errorf("NewData(%+v) enabled without a source", c)
		}
	}
}

func TestHistoryRepo_Disabled(t *testing.T) {
	r := NewHistoryRepo(&Data{}, log.DefaultLogger)

	rec := &domain.AnalysisRecord{Title: "t", Result: &model.AnalysisResult{Prediction: model.PredictionReal}}
	if err := r.SaveRecord(context.Background(), rec); err != nil {
		t.Errorf("SaveRecord() error = %v", err)
	}
	if rec.ID != 0 {
		t.Errorf("ID = %d, want 0 when history is disabled", rec.ID)
	}

	list, err := r.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("ListRecent() = %v, want empty list", list)
	}
}

func TestSanitize(t *testing.T) {
	if got := sanitize("a\x00b\xffc"); got != "abc" {
		t.Errorf("sanitize() = %q, want abc", got)
	}
}
