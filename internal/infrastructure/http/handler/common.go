package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// listResponse 목록 조회 공통 응답
type listResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// pagination 쿼리 파라미터에서 페이지 정보 추출
func pagination(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	return page, limit
}
