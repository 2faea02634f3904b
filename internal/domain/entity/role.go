package entity

// 역할 이름 값
const (
	RoleAdmin     = "ADMIN"
	RoleRecruiter = "RECRUITER"
	RoleSales     = "SALES"
)

// Role 접근 제어를 위한 역할 도메인 엔티티
type Role struct {
	ID          uint
	Name        string
	Description string
}
