package mail

import (
	"fmt"
)

// EmailTemplateService 서비스 안내 메일 HTML 템플릿 생성기
type EmailTemplateService struct {
	appURL      string
	senderEmail string
	serviceName string
}

// NewEmailTemplateService 이메일 템플릿 서비스 생성
func NewEmailTemplateService(appURL, senderEmail, serviceName string) *EmailTemplateService {
	return &EmailTemplateService{
		appURL:      appURL,
		senderEmail: senderEmail,
		serviceName: serviceName,
	}
}

// GeneratePasswordResetEmailHTML 비밀번호 재설정 안내 메일 생성
func (s *EmailTemplateService) GeneratePasswordResetEmailHTML(name, resetURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="ko">
<head>
	<meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
	<title>비밀번호 재설정 안내</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Apple SD Gothic Neo', 'Malgun Gothic', sans-serif; background-color: #f7f9fc;">
	<table align="center" border="0" cellpadding="0" cellspacing="0" width="600" style="border-collapse: collapse; background-color: #ffffff; border-radius: 8px; margin-top: 40px;">
		<tr>
			<td align="center" style="padding: 30px 0; background-color: #5271ff; border-radius: 8px 8px 0 0; color: #ffffff;">
				<h1 style="margin: 0; font-size: 24px;">%s</h1>
			</td>
		</tr>
		<tr>
			<td style="padding: 30px 40px; color: #333333; font-size: 15px; line-height: 1.6;">
				<p>%s님, 안녕하세요.</p>
				<p>비밀번호 재설정 요청을 받았습니다. 아래 버튼을 눌러 새 비밀번호를 설정해 주세요. 링크는 1시간 동안만 유효합니다.</p>
				<p style="text-align: center; margin: 30px 0;">
					<a href="%s" style="display: inline-block; padding: 12px 32px; background-color: #5271ff; color: #ffffff; text-decoration: none; border-radius: 6px; font-weight: 700;">비밀번호 재설정</a>
				</p>
				<p style="color: #888888; font-size: 13px;">본인이 요청하지 않았다면 이 메일을 무시해 주세요. 비밀번호는 변경되지 않습니다.</p>
			</td>
		</tr>
		<tr>
			<td align="center" style="padding: 20px; color: #aaaaaa; font-size: 12px; border-top: 1px solid #eeeeee;">
				문의: %s
			</td>
		</tr>
	</table>
</body>
</html>`, s.serviceName, name, resetURL, s.senderEmail)
}

// GenerateWelcomeEmailHTML 신규 사용자 계정 안내 메일 생성
func (s *EmailTemplateService) GenerateWelcomeEmailHTML(name, username, tempPassword string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="ko">
<head>
	<meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
	<title>계정 생성 안내</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Apple SD Gothic Neo', 'Malgun Gothic', sans-serif; background-color: #f7f9fc;">
	<table align="center" border="0" cellpadding="0" cellspacing="0" width="600" style="border-collapse: collapse; background-color: #ffffff; border-radius: 8px; margin-top: 40px;">
		<tr>
			<td align="center" style="padding: 30px 0; background-color: #5271ff; border-radius: 8px 8px 0 0; color: #ffffff;">
				<h1 style="margin: 0; font-size: 24px;">%s에 오신 것을 환영합니다</h1>
			</td>
		</tr>
		<tr>
			<td style="padding: 30px 40px; color: #333333; font-size: 15px; line-height: 1.6;">
				<p>%s님, 계정이 생성되었습니다.</p>
				<table border="0" cellpadding="8" cellspacing="0" style="background-color: #f2f4f8; border-radius: 6px; margin: 20px 0; width: 100%%;">
					<tr><td style="color: #666666;">아이디</td><td><strong>%s</strong></td></tr>
					<tr><td style="color: #666666;">임시 비밀번호</td><td><strong>%s</strong></td></tr>
				</table>
				<p>로그인 후 반드시 비밀번호를 변경해 주세요.</p>
				<p style="text-align: center; margin: 30px 0;">
					<a href="%s" style="display: inline-block; padding: 12px 32px; background-color: #5271ff; color: #ffffff; text-decoration: none; border-radius: 6px; font-weight: 700;">로그인하기</a>
				</p>
			</td>
		</tr>
	</table>
</body>
</html>`, s.serviceName, name, username, tempPassword, s.appURL)
}
