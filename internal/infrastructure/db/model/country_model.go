package model

// CountryModel 국가 참조 데이터 데이터베이스 모델
type CountryModel struct {
	Code     string `gorm:"type:char(2);primaryKey" json:"code"`
	Name     string `gorm:"size:100;not null" json:"name"`
	DialCode string `gorm:"size:10" json:"dial_code"`
}

// TableName 테이블 이름 지정
func (CountryModel) TableName() string {
	return "countries"
}
