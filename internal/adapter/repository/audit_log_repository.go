package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/db/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditLogRepositoryImpl struct {
	db *gorm.DB
}

// NewAuditLogRepository 감사 로그 저장소 구현체 생성
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &AuditLogRepositoryImpl{db: db}
}

// 도메인 엔티티를 DB 모델로 변환
func toAuditLogModel(auditLog *entity.AuditLog) (*model.AuditLogModel, error) {
	contentJSON, err := auditLog.ContentJSON()
	if err != nil {
		return nil, fmt.Errorf("JSON 직렬화 실패: %w", err)
	}

	return &model.AuditLogModel{
		ID:      auditLog.ID,
		UserID:  auditLog.UserID,
		Type:    string(auditLog.Type),
		Content: datatypes.JSON(contentJSON),
	}, nil
}

// DB 모델을 도메인 엔티티로 변환
func toAuditLogEntity(auditLogModel *model.AuditLogModel) (*entity.AuditLog, error) {
	var content map[string]interface{}
	if len(auditLogModel.Content) > 0 {
		if err := json.Unmarshal(auditLogModel.Content, &content); err != nil {
			return nil, fmt.Errorf("JSON 역직렬화 실패: %w", err)
		}
	}

	return &entity.AuditLog{
		ID:        auditLogModel.ID,
		UserID:    auditLogModel.UserID,
		Type:      entity.AuditLogType(auditLogModel.Type),
		Content:   content,
		CreatedAt: auditLogModel.CreatedAt,
	}, nil
}

func toAuditLogEntities(models []model.AuditLogModel) ([]*entity.AuditLog, error) {
	logs := make([]*entity.AuditLog, len(models))
	for i := range models {
		log, err := toAuditLogEntity(&models[i])
		if err != nil {
			return nil, err
		}
		logs[i] = log
	}
	return logs, nil
}

// Create 새 감사 로그 생성
func (r *AuditLogRepositoryImpl) Create(ctx context.Context, log *entity.AuditLog) error {
	auditLogModel, err := toAuditLogModel(log)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(auditLogModel).Error; err != nil {
		return fmt.Errorf("감사 로그 생성 실패: %w", err)
	}

	log.ID = auditLogModel.ID
	return nil
}

// ListByUserID 사용자 ID로 감사 로그 목록 조회
func (r *AuditLogRepositoryImpl) ListByUserID(ctx context.Context, userID string, page, limit int) ([]*entity.AuditLog, int64, error) {
	var auditLogModels []model.AuditLogModel
	var total int64

	query := r.db.WithContext(ctx).Model(&model.AuditLogModel{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&auditLogModels).Error; err != nil {
		return nil, 0, err
	}

	logs, err := toAuditLogEntities(auditLogModels)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// ListByType 로그 유형으로 감사 로그 목록 조회
func (r *AuditLogRepositoryImpl) ListByType(ctx context.Context, logType entity.AuditLogType, page, limit int) ([]*entity.AuditLog, int64, error) {
	var auditLogModels []model.AuditLogModel
	var total int64

	query := r.db.WithContext(ctx).Model(&model.AuditLogModel{}).Where("type = ?", string(logType))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&auditLogModels).Error; err != nil {
		return nil, 0, err
	}

	logs, err := toAuditLogEntities(auditLogModels)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// Search 검색 조건으로 감사 로그 조회
func (r *AuditLogRepositoryImpl) Search(
	ctx context.Context,
	userID *string,
	logTypes []entity.AuditLogType,
	startDate, endDate *time.Time,
	page, limit int,
) ([]*entity.AuditLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.AuditLogModel{})

	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if len(logTypes) > 0 {
		types := make([]string, len(logTypes))
		for i, t := range logTypes {
			types[i] = string(t)
		}
		query = query.Where("type IN ?", types)
	}
	if startDate != nil {
		query = query.Where("created_at >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("created_at <= ?", *endDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var auditLogModels []model.AuditLogModel
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&auditLogModels).Error; err != nil {
		return nil, 0, err
	}

	logs, err := toAuditLogEntities(auditLogModels)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
