package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/http/handler"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/http/middleware"
	"github.com/shri210404/pmsnew-sub000/pkg/logger"
)

// Server HTTP 서버 구조체
type Server struct {
	router  *echo.Echo
	server  *http.Server
	logger  *zap.Logger
	address string
}

// Config HTTP 서버 설정
type Config struct {
	Port    string
	Timeout int
	Debug   bool
}

// Handlers 라우트 등록에 필요한 핸들러 모음
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Client       *handler.ClientHandler
	Country      *handler.CountryHandler
	JobOrder     *handler.JobOrderHandler
	Proposal     *handler.ProposalHandler
	MailTemplate *handler.MailTemplateHandler
	Dashboard    *handler.DashboardHandler
	AuditLog     *handler.AuditLogHandler
}

// requestValidator echo에 연결되는 go-playground 검증기
type requestValidator struct {
	validate *validator.Validate
}

// Validate 요청 구조체 검증
func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// NewServer HTTP 서버 생성
func NewServer(cfg Config, zapLogger *zap.Logger) *Server {
	// Echo 인스턴스 생성
	e := echo.New()
	e.HideBanner = true

	// 요청 본문 검증기 설정
	e.Validator = &requestValidator{validate: validator.New()}

	// 기본 미들웨어 설정
	e.Use(echomiddleware.Recover())

	// 로그 미들웨어 설정
	e.Use(logger.NewEchoRequestLogger(zapLogger))

	// Echo 로거 설정
	logger.WithEchoLogger(e, zapLogger)

	// HTTP 서버 주소 설정
	address := fmt.Sprintf(":%s", cfg.Port)

	// HTTP 서버 설정
	server := &http.Server{
		Addr:         address,
		ReadTimeout:  time.Duration(cfg.Timeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Timeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Timeout) * time.Second,
	}

	return &Server{
		router:  e,
		server:  server,
		logger:  zapLogger,
		address: address,
	}
}

// Router Echo 인스턴스 반환
func (s *Server) Router() *echo.Echo {
	return s.router
}

// RegisterRoutes HTTP 라우트 등록
func (s *Server) RegisterRoutes(handlers Handlers, authMiddleware *middleware.JWTAuthMiddleware) {
	// 헬스 체크
	s.router.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	// 인증 라우트 (공개)
	auth := s.router.Group("/auth")
	auth.POST("/login", handlers.Auth.Login)
	auth.GET("/renew-token", handlers.Auth.RenewToken)
	auth.POST("/logout", handlers.Auth.Logout)
	auth.POST("/forgot-password", handlers.Auth.ForgotPassword)
	auth.POST("/reset-password", handlers.Auth.ResetPassword)

	// 인증 라우트 (세션 필요)
	auth.POST("/change-password", handlers.Auth.ChangePassword, authMiddleware.Handle())

	// API 라우트 (세션 필요)
	api := s.router.Group("/api/v1", authMiddleware.Handle())

	// 사용자 관리 (관리자 전용)
	adminOnly := middleware.RequireRoles(entity.RoleAdmin)
	users := api.Group("/users", adminOnly)
	users.POST("", handlers.User.Create)
	users.GET("", handlers.User.List)
	users.GET("/:id", handlers.User.Get)
	users.PUT("/:id", handlers.User.Update)
	users.PUT("/:id/role", handlers.User.ChangeRole)
	users.PUT("/:id/status", handlers.User.ChangeStatus)
	users.DELETE("/:id", handlers.User.Delete)
	users.GET("/:id/audit-logs", handlers.AuditLog.ListByUser)

	// 역할 목록
	api.GET("/roles", handlers.User.ListRoles)

	// 감사 로그 검색 (관리자 전용)
	api.GET("/audit-logs", handlers.AuditLog.Search, adminOnly)

	// 고객사
	clients := api.Group("/clients")
	clients.POST("", handlers.Client.Create)
	clients.GET("", handlers.Client.List)
	clients.GET("/:id", handlers.Client.Get)
	clients.PUT("/:id", handlers.Client.Update)
	clients.DELETE("/:id", handlers.Client.Delete)

	// 국가 참조 데이터
	countries := api.Group("/countries")
	countries.GET("", handlers.Country.List)
	countries.GET("/:code", handlers.Country.Get)
	countries.PUT("", handlers.Country.Upsert, adminOnly)

	// 잡오더
	jobOrders := api.Group("/job-orders")
	jobOrders.POST("", handlers.JobOrder.Create)
	jobOrders.GET("", handlers.JobOrder.List)
	jobOrders.GET("/:id", handlers.JobOrder.Get)
	jobOrders.PUT("/:id", handlers.JobOrder.Update)
	jobOrders.PUT("/:id/status", handlers.JobOrder.ChangeStatus)
	jobOrders.DELETE("/:id", handlers.JobOrder.Delete)

	// 후보자 제안
	proposals := api.Group("/proposals")
	proposals.POST("", handlers.Proposal.Create)
	proposals.GET("", handlers.Proposal.List)
	proposals.GET("/:id", handlers.Proposal.Get)
	proposals.PUT("/:id/status", handlers.Proposal.ChangeStatus)
	proposals.DELETE("/:id", handlers.Proposal.Delete)

	// 메일 템플릿
	templates := api.Group("/mail-templates")
	templates.POST("", handlers.MailTemplate.Create)
	templates.GET("", handlers.MailTemplate.List)
	templates.GET("/:id", handlers.MailTemplate.Get)
	templates.PUT("/:id", handlers.MailTemplate.Update)
	templates.DELETE("/:id", handlers.MailTemplate.Delete)

	// 대시보드
	api.GET("/dashboard/status-summary", handlers.Dashboard.StatusSummary)
}

// Start HTTP 서버 시작
func (s *Server) Start() error {
	s.logger.Info("HTTP 서버 시작",
		zap.String("address", s.address),
	)

	// 서버 시작
	s.server.Handler = s.router
	return s.router.StartServer(s.server)
}

// Stop HTTP 서버 종료
func (s *Server) Stop() error {
	s.logger.Info("HTTP 서버 종료 중...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.router.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP 서버 종료 실패: %w", err)
	}

	s.logger.Info("HTTP 서버 종료 완료")
	return nil
}
