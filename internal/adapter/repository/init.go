package repository

import (
	"github.com/redis/go-redis/v9"
	domainrepo "github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/db"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/mail"
	"gorm.io/gorm"
)

// InitRepositories 모든 레포지토리를 초기화하고 컬렉션을 반환합니다
func InitRepositories(database *gorm.DB, redisClient *redis.Client, smtpClient *mail.SMTPClient) *domainrepo.Repositories {
	return &domainrepo.Repositories{
		User:          NewUserRepository(database),
		Role:          NewRoleRepository(database),
		RefreshToken:  NewRefreshTokenRepository(database),
		LoginActivity: NewLoginActivityRepository(database),
		AuditLog:      NewAuditLogRepository(database),
		Client:        NewClientRepository(database),
		Country:       NewCountryRepository(database),
		JobOrder:      NewJobOrderRepository(database),
		Proposal:      NewProposalRepository(database),
		MailTemplate:  NewMailTemplateRepository(database),
		Cache:         db.NewRedisRepository(redisClient),
		Mail:          NewMailRepository(smtpClient),
	}
}
