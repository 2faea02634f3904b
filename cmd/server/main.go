package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/adapter/repository"
	"github.com/shri210404/pmsnew-sub000/internal/config"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/db"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/http"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/http/handler"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/http/middleware"
	"github.com/shri210404/pmsnew-sub000/internal/usecase"
	"github.com/shri210404/pmsnew-sub000/internal/worker"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 2. 로거 가져오기
	logger := cfg.Logger
	defer logger.Sync()

	logger.Info("채용 관리 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
	)

	// 3. 인프라스트럭처 초기화
	infrastructure, err := db.NewInfrastructure(cfg)
	if err != nil {
		logger.Fatal("인프라스트럭처 초기화 실패", zap.Error(err))
	}
	defer infrastructure.Close()

	// 4. 레포지토리 초기화
	repositories := repository.InitRepositories(
		infrastructure.DB,
		infrastructure.RedisClient,
		infrastructure.SMTPClient,
	)

	// 5. 유스케이스 초기화
	useCases, err := usecase.SetupUseCases(logger, cfg, repositories)
	if err != nil {
		logger.Fatal("유스케이스 초기화 실패", zap.Error(err))
	}

	// 6. 핸들러 및 미들웨어 구성
	cookieConfig := handler.CookieConfig{
		Name:       cfg.RefreshToken.Name,
		ExpiryDays: cfg.RefreshToken.ExpiryDays,
		Secure:     cfg.IsProduction(),
	}

	handlers := http.Handlers{
		Auth:         handler.NewAuthHandler(logger, useCases.Auth, cookieConfig),
		User:         handler.NewUserHandler(logger, useCases.User, repositories.Role),
		Client:       handler.NewClientHandler(logger, useCases.Client),
		Country:      handler.NewCountryHandler(logger, useCases.Country),
		JobOrder:     handler.NewJobOrderHandler(logger, useCases.JobOrder),
		Proposal:     handler.NewProposalHandler(logger, useCases.Proposal),
		MailTemplate: handler.NewMailTemplateHandler(logger, useCases.MailTemplate),
		Dashboard:    handler.NewDashboardHandler(logger, useCases.Dashboard),
		AuditLog:     handler.NewAuditLogHandler(logger, useCases.AuditLog),
	}

	authMiddleware := middleware.NewJWTAuthMiddleware(useCases.Token, logger)

	// 7. HTTP 서버 생성 및 라우트 등록
	httpConfig := http.Config{
		Port:    cfg.Server.HTTP.Port,
		Timeout: cfg.Server.HTTP.Timeout,
		Debug:   cfg.Server.HTTP.Debug,
	}

	httpServer := http.NewServer(httpConfig, logger)
	httpServer.RegisterRoutes(handlers, authMiddleware)

	// 8. 토큰 보존 정리 워커 시작
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	retentionWorker := worker.NewRetentionWorker(logger, useCases.Cleanup)
	retentionWorker.Start(workerCtx)

	// 9. 서버 시작
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Error("HTTP 서버 종료", zap.Error(err))
		}
	}()

	// 10. 그레이스풀 종료를 위한 시그널 처리
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("서버를 종료합니다...")

	cancelWorker()

	if err := httpServer.Stop(); err != nil {
		logger.Error("HTTP 서버 종료 오류", zap.Error(err))
	}

	logger.Info("서버가 정상적으로 종료되었습니다")
}
