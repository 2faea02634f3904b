package dto

// CreateUserParams 관리자용 사용자 생성 파라미터
type CreateUserParams struct {
	Username string // 로그인 식별자 (이메일)
	Name     string
	Email    string
	RoleName string
	ActorID  string // 생성을 수행한 관리자 ID
}

// UpdateUserParams 사용자 기본 정보 수정 파라미터
type UpdateUserParams struct {
	UserID  string
	Name    string
	Email   string
	ActorID string
}
