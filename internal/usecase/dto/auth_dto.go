package dto

// LoginParams 로그인 요청 파라미터
type LoginParams struct {
	Username  string // 로그인 식별자 (이메일)
	Secret    string // 비밀번호
	IP        string
	UserAgent string
}

// UserDetails 클라이언트에 노출되는 사용자 정보
type UserDetails struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResult 로그인 및 토큰 갱신 성공 결과
type LoginResult struct {
	AuthToken     string      // 액세스 토큰 (JWT)
	RefreshSecret string      // 쿠키에 담길 리프레시 시크릿
	User          UserDetails // 사용자 정보
}

// ChangePasswordParams 비밀번호 변경 요청 파라미터
type ChangePasswordParams struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
}

// ResetPasswordParams 비밀번호 재설정 요청 파라미터
type ResetPasswordParams struct {
	Token       string // 이메일로 전달된 재설정 토큰
	NewPassword string
}
