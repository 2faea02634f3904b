package model

// RoleModel 역할 데이터베이스 모델
type RoleModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Description string `gorm:"size:250" json:"description"`
}

// TableName 테이블 이름 지정
func (RoleModel) TableName() string {
	return "roles"
}
