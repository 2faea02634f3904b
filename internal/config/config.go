package config

import (
	"fmt"
	"os"

	"github.com/shri210404/pmsnew-sub000/pkg/config"
	"github.com/shri210404/pmsnew-sub000/pkg/logger"
	"go.uber.org/zap"
)

// 리프레시 토큰 시크릿 길이 상한 (바이트 단위, hex 인코딩 시 64자)
const maxRefreshTokenLength = 32

// Config 채용 관리 서비스 설정 구조체
type Config struct {
	// 서비스 기본 정보
	Service struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
		BaseURL string `yaml:"base_url"`
		Env     string `yaml:"env"`
	} `yaml:"service"`

	// 서버 설정
	Server struct {
		HTTP struct {
			Port    string `yaml:"port"`
			Timeout int    `yaml:"timeout"`
			Debug   bool   `yaml:"debug"`
		} `yaml:"http"`
	} `yaml:"server"`

	// 데이터베이스 설정
	Database struct {
		Driver          string `yaml:"driver"`
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Name            string `yaml:"name"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
		SSLMode         string `yaml:"ssl_mode"`
	} `yaml:"database"`

	// Redis 설정
	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	// JWT 설정. 키 파일은 프로세스 시작 시 한 번만 읽습니다.
	JWT struct {
		Issuer         string `yaml:"issuer"`
		PrivateKeyPath string `yaml:"private_key_path"`
		PublicKeyPath  string `yaml:"public_key_path"`
		PrivateKeyPEM  string `yaml:"-"`
		PublicKeyPEM   string `yaml:"-"`
	} `yaml:"jwt"`

	// 리프레시 토큰 설정
	RefreshToken struct {
		Name       string `yaml:"name"`
		ExpiryDays int    `yaml:"expiry_days"`
		Length     int    `yaml:"length"`
	} `yaml:"refresh_token"`

	// 인증 설정
	Auth struct {
		HashCost         int    `yaml:"hash_cost"`
		ResetTokenExpiry int    `yaml:"reset_token_expiry"`
		ResetPasswordURL string `yaml:"reset_password_url"`
	} `yaml:"auth"`

	// 로그 설정
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`

	// Email 설정
	Email struct {
		SenderEmail string `yaml:"sender_email"`
		SMTPHost    string `yaml:"smtp_host"`
		SMTPPort    int    `yaml:"smtp_port"`
		SMTPUser    string `yaml:"smtp_user"`
		SMTPPass    string `yaml:"smtp_pass"`
	} `yaml:"email"`

	// 로거 인스턴스
	Logger *zap.Logger
}

// IsProduction 프로덕션 환경 여부
func (c *Config) IsProduction() bool {
	return c.Service.Env == "production" || c.Service.Env == "prod"
}

var (
	// AppConfig는 어플리케이션 전체에서 사용하는 설정 인스턴스입니다.
	AppConfig *Config
)

// Load 설정 파일 로드
func Load() (*Config, error) {
	// pkg/config 패키지를 사용하여 설정 파일 로드
	cfg, err := config.Load("pms")
	if err != nil {
		return nil, err
	}

	// Config 구조체 생성
	appConfig := &Config{}

	// 서비스 정보
	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")
	appConfig.Service.BaseURL = cfg.GetString("service.base_url")
	appConfig.Service.Env = cfg.GetString("service.env")

	// HTTP 서버 설정
	appConfig.Server.HTTP.Port = cfg.GetString("server.http.port")
	appConfig.Server.HTTP.Timeout = cfg.GetInt("server.http.timeout")
	appConfig.Server.HTTP.Debug = cfg.GetBool("server.http.debug")

	// 데이터베이스 설정
	appConfig.Database.Driver = cfg.GetString("database.driver")
	appConfig.Database.Host = cfg.GetString("database.host")
	appConfig.Database.Port = cfg.GetInt("database.port")
	appConfig.Database.Name = cfg.GetString("database.name")
	appConfig.Database.User = cfg.GetString("database.user")
	appConfig.Database.Password = cfg.GetString("database.password")
	appConfig.Database.MaxOpenConns = cfg.GetInt("database.max_open_conns")
	appConfig.Database.MaxIdleConns = cfg.GetInt("database.max_idle_conns")
	appConfig.Database.ConnMaxLifetime = cfg.GetInt("database.conn_max_lifetime")
	appConfig.Database.SSLMode = cfg.GetString("database.ssl_mode")
	if appConfig.Database.SSLMode == "" {
		appConfig.Database.SSLMode = "disable"
	}

	// Redis 설정
	appConfig.Redis.Host = cfg.GetString("redis.host")
	appConfig.Redis.Port = cfg.GetInt("redis.port")
	appConfig.Redis.Password = cfg.GetString("redis.password")
	appConfig.Redis.DB = cfg.GetInt("redis.db")

	// JWT 설정
	appConfig.JWT.Issuer = cfg.GetString("jwt.issuer")
	appConfig.JWT.PrivateKeyPath = cfg.GetString("jwt.private_key_path")
	appConfig.JWT.PublicKeyPath = cfg.GetString("jwt.public_key_path")

	// 키 파일 로드. 실패 시 기동을 중단합니다.
	privateKey, err := os.ReadFile(appConfig.JWT.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("JWT 개인 키 파일 로드 실패: %w", err)
	}
	publicKey, err := os.ReadFile(appConfig.JWT.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("JWT 공개 키 파일 로드 실패: %w", err)
	}
	appConfig.JWT.PrivateKeyPEM = string(privateKey)
	appConfig.JWT.PublicKeyPEM = string(publicKey)

	// 리프레시 토큰 설정
	appConfig.RefreshToken.Name = cfg.GetString("refresh_token.name")
	if appConfig.RefreshToken.Name == "" {
		appConfig.RefreshToken.Name = "refreshToken"
	}
	appConfig.RefreshToken.ExpiryDays = cfg.GetInt("refresh_token.expiry_days")
	if appConfig.RefreshToken.ExpiryDays <= 0 {
		appConfig.RefreshToken.ExpiryDays = 7
	}
	appConfig.RefreshToken.Length = normalizeTokenLength(cfg.GetInt("refresh_token.length"))

	// 인증 설정
	appConfig.Auth.HashCost = cfg.GetInt("auth.hash_cost")
	appConfig.Auth.ResetTokenExpiry = cfg.GetInt("auth.reset_token_expiry")
	if appConfig.Auth.ResetTokenExpiry <= 0 {
		appConfig.Auth.ResetTokenExpiry = 3600
	}
	appConfig.Auth.ResetPasswordURL = cfg.GetString("auth.reset_password_url")

	// 로그 설정
	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")

	// 이메일 설정
	appConfig.Email.SenderEmail = cfg.GetString("email.sender_email")
	appConfig.Email.SMTPHost = cfg.GetString("email.smtp_host")
	appConfig.Email.SMTPPort = cfg.GetInt("email.smtp_port")
	appConfig.Email.SMTPUser = cfg.GetString("email.smtp_user")
	appConfig.Email.SMTPPass = cfg.GetString("email.smtp_pass")

	// 로거 설정
	loggerConfig := logger.Config{
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		Development: appConfig.Server.HTTP.Debug,
	}

	// 로거 생성
	appConfig.Logger, err = logger.NewZapLogger(loggerConfig)
	if err != nil {
		return nil, err
	}

	// 전역 변수에 설정
	AppConfig = appConfig

	return appConfig, nil
}

// normalizeTokenLength는 리프레시 토큰 시크릿 길이를 정규화합니다.
// 홀수는 내림하고, 상한을 넘는 값은 상한으로 자릅니다.
func normalizeTokenLength(length int) int {
	if length <= 0 {
		length = maxRefreshTokenLength
	}
	if length%2 != 0 {
		length--
	}
	if length < 16 {
		length = 16
	}
	if length > maxRefreshTokenLength {
		length = maxRefreshTokenLength
	}
	return length
}
