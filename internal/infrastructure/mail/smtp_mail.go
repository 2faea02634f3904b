package mail

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

// SMTPConfig SMTP 설정 구조체
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPClient SMTP를 통한 이메일 발송 클라이언트
type SMTPClient struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPClient SMTP 클라이언트 생성
func NewSMTPClient(cfg SMTPConfig) *SMTPClient {
	return &SMTPClient{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendMail 이메일 발송
func (m *SMTPClient) SendMail(ctx context.Context, to, subject, body string) error {
	return m.SendMailWithAttachment(ctx, to, subject, body, nil)
}

// SendMailWithAttachment 첨부 파일이 있는 이메일 발송
func (m *SMTPClient) SendMailWithAttachment(ctx context.Context, to, subject, body string, attachments map[string][]byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	for name, data := range attachments {
		content := data
		msg.Attach(name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("이메일 발송 실패: %w", err)
	}
	return nil
}
