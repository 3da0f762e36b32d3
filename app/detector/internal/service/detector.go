package service

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	pb "github.com/iWorld-y/fake_news_detector/app/detector/api/detector/v1"
	"github.com/iWorld-y/fake_news_detector/app/detector/internal/domain"
	"github.com/iWorld-y/fake_news_detector/app/detector/internal/usecase"
)

const timeLayout = "2006-01-02 15:04:05"

type DetectorService struct {
	uc  *usecase.AnalysisUseCase
	log *log.Helper
}

func NewDetectorService(uc *usecase.AnalysisUseCase, logger log.Logger) *DetectorService {
	return &DetectorService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

func (s *DetectorService) Analyze(ctx context.Context, req *pb.AnalyzeReq) (*pb.AnalyzeReply, error) {
	r, err := s.uc.Analyze(ctx, domain.ArticleInput{
		Title:   req.Title,
		Source:  req.Source,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}
	return &pb.AnalyzeReply{Id: r.ID, Result: r.Result}, nil
}

func (s *DetectorService) AnalyzeURL(ctx context.Context, req *pb.AnalyzeURLReq) (*pb.AnalyzeURLReply, error) {
	r, err := s.uc.AnalyzeURL(ctx, req.Url)
	if err != nil {
		return nil, err
	}
	return &pb.AnalyzeURLReply{Id: r.ID, Title: r.Title, Result: r.Result}, nil
}

func (s *DetectorService) ListSamples(ctx context.Context, req *pb.ListSamplesReq) (*pb.ListSamplesReply, error) {
	return &pb.ListSamplesReply{Samples: s.uc.ListSamples(ctx)}, nil
}

func (s *DetectorService) AnalyzeSample(ctx context.Context, req *pb.AnalyzeSampleReq) (*pb.AnalyzeSampleReply, error) {
	sa, err := s.uc.AnalyzeSample(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return &pb.AnalyzeSampleReply{
		Sample:    sa.Sample,
		Result:    sa.Result,
		Expected:  sa.Sample.ExpectedResult,
		Predicted: sa.Result.Prediction,
		Match:     sa.Match(),
	}, nil
}

func (s *DetectorService) ListHistory(ctx context.Context, req *pb.ListHistoryReq) (*pb.ListHistoryReply, error) {
	records, err := s.uc.History(ctx, int(req.Limit))
	if err != nil {
		return nil, err
	}

	list := make([]*pb.HistoryRecord, 0, len(records))
	for _, r := range records {
		list = append(list, &pb.HistoryRecord{
			Id:        r.ID,
			Title:     r.Title,
			Source:    r.Source,
			Result:    r.Result,
			CreatedAt: r.CreatedAt.Format(timeLayout),
		})
	}
	return &pb.ListHistoryReply{Records: list}, nil
}
