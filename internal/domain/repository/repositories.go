package repository

// Repositories 모든 레포지토리 인터페이스의 컬렉션
type Repositories struct {
	User          UserRepository
	Role          RoleRepository
	RefreshToken  RefreshTokenRepository
	LoginActivity LoginActivityRepository
	AuditLog      AuditLogRepository
	Client        ClientRepository
	Country       CountryRepository
	JobOrder      JobOrderRepository
	Proposal      ProposalRepository
	MailTemplate  MailTemplateRepository
	Cache         CacheRepository
	Mail          MailRepository
}
