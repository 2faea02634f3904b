package entity

// Country 국가 참조 데이터 도메인 엔티티
type Country struct {
	Code     string // ISO 3166-1 alpha-2 코드
	Name     string
	DialCode string
}
