package main

import (
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/fake_news_detector/app/detector/internal/conf"
	"github.com/iWorld-y/fake_news_detector/app/detector/internal/data"
	"github.com/iWorld-y/fake_news_detector/app/detector/internal/server"
	"github.com/iWorld-y/fake_news_detector/app/detector/internal/service"
	"github.com/iWorld-y/fake_news_detector/app/detector/internal/usecase"
)

// initApp 组装检测服务依赖
func initApp(confServer *conf.Server, confData *conf.Data, confDetector *conf.Detector, logger log.Logger) (*kratos.App, func(), error) {
	dataData, cleanup, err := data.NewData(confData, logger)
	if err != nil {
		return nil, nil, err
	}
	historyRepo := data.NewHistoryRepo(dataData, logger)
	analyzer := server.NewDetectorEngine(confDetector, logger)
	fetcher := server.NewArticleFetcher(confDetector)
	analysisUseCase := usecase.NewAnalysisUseCase(analyzer, fetcher, historyRepo, logger)
	detectorService := service.NewDetectorService(analysisUseCase, logger)
	httpServer := server.NewHTTPServer(confServer, detectorService, logger)
	app := newApp(logger, httpServer)
	return app, func() {
		cleanup()
	}, nil
}

func newApp(logger log.Logger, hs *http.Server) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(hs),
	)
}
