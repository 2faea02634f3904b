package usecase

import (
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/config"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/mail"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/constants"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
)

// UseCases는 모든 유스케이스를 담고 있는 구조체입니다.
type UseCases struct {
	Auth         interfaces.AuthUseCase
	Token        interfaces.TokenUseCase
	Email        interfaces.EmailUseCase
	User         interfaces.UserUseCase
	AuditLog     interfaces.AuditLogUseCase
	Client       interfaces.ClientUseCase
	Country      interfaces.CountryUseCase
	JobOrder     interfaces.JobOrderUseCase
	Proposal     interfaces.ProposalUseCase
	MailTemplate interfaces.MailTemplateUseCase
	Dashboard    interfaces.DashboardUseCase
	Cleanup      interfaces.CleanupUseCase
}

// SetupUseCases는 모든 유스케이스 구현체를 생성하고 의존성을 주입합니다.
func SetupUseCases(
	logger *zap.Logger,
	cfg *config.Config,
	repositories *repository.Repositories,
) (*UseCases, error) {
	// 1. 기본 유스케이스 생성 (다른 유스케이스에 의존하지 않는 것부터)
	auditLogUC := NewAuditLogUseCase(
		logger,
		repositories.AuditLog,
	)

	// 2. 토큰 유스케이스 생성
	tokenConfig := TokenConfig{
		Issuer:             cfg.JWT.Issuer,
		JwtPrivateKey:      cfg.JWT.PrivateKeyPEM,
		JwtPublicKey:       cfg.JWT.PublicKeyPEM,
		AccessTokenExpiry:  constants.AccessTokenExpiry,
		RefreshExpiryDays:  cfg.RefreshToken.ExpiryDays,
		RefreshTokenLength: cfg.RefreshToken.Length,
	}

	tokenUC, err := NewTokenUseCase(
		logger,
		tokenConfig,
		repositories.RefreshToken,
		repositories.User,
		repositories.Cache,
		repositories.AuditLog,
	)
	if err != nil {
		return nil, err
	}

	// 3. 이메일 유스케이스 생성
	templates := mail.NewEmailTemplateService(
		cfg.Service.BaseURL,
		cfg.Email.SenderEmail,
		cfg.Service.Name,
	)

	emailUC := NewEmailUseCase(
		logger,
		repositories.Mail,
		templates,
		cfg.Auth.ResetPasswordURL,
	)

	// 4. 인증 유스케이스 생성 (다른 유스케이스를 의존)
	authConfig := AuthConfig{
		HashCost:         cfg.Auth.HashCost,
		ResetTokenExpiry: cfg.Auth.ResetTokenExpiry,
	}

	authUC := NewAuthUseCase(
		logger,
		authConfig,
		repositories.User,
		repositories.LoginActivity,
		repositories.AuditLog,
		tokenUC,
		emailUC,
	)

	// 5. 사용자 관리 유스케이스 생성
	userUC := NewUserUseCase(
		logger,
		cfg.Auth.HashCost,
		repositories.User,
		repositories.Role,
		repositories.AuditLog,
		tokenUC,
		emailUC,
	)

	// 6. 채용 도메인 유스케이스 생성
	clientUC := NewClientUseCase(logger, repositories.Client, repositories.Country)
	countryUC := NewCountryUseCase(logger, repositories.Country)
	jobOrderUC := NewJobOrderUseCase(logger, repositories.JobOrder, repositories.Client)
	proposalUC := NewProposalUseCase(
		logger,
		repositories.Proposal,
		repositories.JobOrder,
		repositories.MailTemplate,
		repositories.Mail,
	)
	mailTemplateUC := NewMailTemplateUseCase(logger, repositories.MailTemplate)

	// 7. 대시보드 및 정리 유스케이스 생성
	dashboardUC := NewDashboardUseCase(logger, repositories.JobOrder, repositories.Proposal)
	cleanupUC := NewCleanupUseCase(logger, cfg.RefreshToken.ExpiryDays, repositories.RefreshToken)

	return &UseCases{
		Auth:         authUC,
		Token:        tokenUC,
		Email:        emailUC,
		User:         userUC,
		AuditLog:     auditLogUC,
		Client:       clientUC,
		Country:      countryUC,
		JobOrder:     jobOrderUC,
		Proposal:     proposalUC,
		MailTemplate: mailTemplateUC,
		Dashboard:    dashboardUC,
		Cleanup:      cleanupUC,
	}, nil
}
