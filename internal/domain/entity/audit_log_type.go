package entity

// AuditLogType 시스템에서 감사 가능한 이벤트 유형을 정의합니다
// 감사 로그 분류 및 필터링에 사용됩니다
type AuditLogType string

const (
	// 인증 관련 감사 로그 유형
	AuditLogTypeLoginSuccess       AuditLogType = "LOGIN_SUCCESS"        // 사용자 로그인 성공
	AuditLogTypeLoginFailed        AuditLogType = "LOGIN_FAILED"         // 로그인 시도 실패
	AuditLogTypeLogoutSuccess      AuditLogType = "LOGOUT_SUCCESS"       // 사용자 로그아웃 성공
	AuditLogTypeTokenRotated       AuditLogType = "TOKEN_ROTATED"        // 리프레시 토큰 회전 성공
	AuditLogTypeTokenReuseDetected AuditLogType = "TOKEN_REUSE_DETECTED" // 철회된 토큰 재사용 감지

	// 비밀번호 관리 감사 로그 유형
	AuditLogTypePasswordChanged        AuditLogType = "PASSWORD_CHANGED"         // 비밀번호 변경
	AuditLogTypePasswordResetRequested AuditLogType = "PASSWORD_RESET_REQUESTED" // 비밀번호 재설정 요청
	AuditLogTypePasswordReset          AuditLogType = "PASSWORD_RESET"           // 비밀번호 재설정 완료

	// 사용자 관리 감사 로그 유형
	AuditLogTypeUserCreated       AuditLogType = "USER_CREATED"        // 신규 사용자 생성
	AuditLogTypeUserStatusChanged AuditLogType = "USER_STATUS_CHANGED" // 계정 상태 변경
	AuditLogTypeUserRoleChanged   AuditLogType = "USER_ROLE_CHANGED"   // 역할 변경
)
