package mapper

import (
	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/db/model"
)

// ClientToModel 고객사 엔티티를 DB 모델로 변환
func ClientToModel(client *entity.Client) *model.ClientModel {
	if client == nil {
		return nil
	}

	return &model.ClientModel{
		ID:            client.ID,
		Name:          client.Name,
		ContactPerson: client.ContactPerson,
		ContactEmail:  client.ContactEmail,
		ContactPhone:  client.ContactPhone,
		CountryCode:   client.CountryCode,
		Address:       client.Address,
		IsActive:      client.IsActive,
	}
}

// ClientFromModel DB 모델을 고객사 엔티티로 변환
func ClientFromModel(m *model.ClientModel) *entity.Client {
	if m == nil {
		return nil
	}

	return &entity.Client{
		ID:            m.ID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		ContactEmail:  m.ContactEmail,
		ContactPhone:  m.ContactPhone,
		CountryCode:   m.CountryCode,
		Address:       m.Address,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// JobOrderToModel 잡오더 엔티티를 DB 모델로 변환
func JobOrderToModel(jobOrder *entity.JobOrder) *model.JobOrderModel {
	if jobOrder == nil {
		return nil
	}

	return &model.JobOrderModel{
		ID:          jobOrder.ID,
		ClientID:    jobOrder.ClientID,
		CountryCode: jobOrder.CountryCode,
		Title:       jobOrder.Title,
		Description: jobOrder.Description,
		Positions:   jobOrder.Positions,
		MinRate:     jobOrder.MinRate,
		MaxRate:     jobOrder.MaxRate,
		Currency:    jobOrder.Currency,
		Status:      jobOrder.Status,
		OpenedAt:    jobOrder.OpenedAt,
		TargetDate:  jobOrder.TargetDate,
		CreatedByID: jobOrder.CreatedByID,
	}
}

// JobOrderFromModel DB 모델을 잡오더 엔티티로 변환
func JobOrderFromModel(m *model.JobOrderModel) *entity.JobOrder {
	if m == nil {
		return nil
	}

	return &entity.JobOrder{
		ID:          m.ID,
		ClientID:    m.ClientID,
		CountryCode: m.CountryCode,
		Title:       m.Title,
		Description: m.Description,
		Positions:   m.Positions,
		MinRate:     m.MinRate,
		MaxRate:     m.MaxRate,
		Currency:    m.Currency,
		Status:      m.Status,
		OpenedAt:    m.OpenedAt,
		TargetDate:  m.TargetDate,
		CreatedByID: m.CreatedByID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProposalToModel 제안 엔티티를 DB 모델로 변환
func ProposalToModel(proposal *entity.Proposal) *model.ProposalModel {
	if proposal == nil {
		return nil
	}

	return &model.ProposalModel{
		ID:             proposal.ID,
		JobOrderID:     proposal.JobOrderID,
		CandidateName:  proposal.CandidateName,
		CandidateEmail: proposal.CandidateEmail,
		ExpectedRate:   proposal.ExpectedRate,
		Currency:       proposal.Currency,
		Status:         proposal.Status,
		Notes:          proposal.Notes,
		ProposedByID:   proposal.ProposedByID,
	}
}

// ProposalFromModel DB 모델을 제안 엔티티로 변환
func ProposalFromModel(m *model.ProposalModel) *entity.Proposal {
	if m == nil {
		return nil
	}

	return &entity.Proposal{
		ID:             m.ID,
		JobOrderID:     m.JobOrderID,
		CandidateName:  m.CandidateName,
		CandidateEmail: m.CandidateEmail,
		ExpectedRate:   m.ExpectedRate,
		Currency:       m.Currency,
		Status:         m.Status,
		Notes:          m.Notes,
		ProposedByID:   m.ProposedByID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// MailTemplateToModel 메일 템플릿 엔티티를 DB 모델로 변환
func MailTemplateToModel(template *entity.MailTemplate) *model.MailTemplateModel {
	if template == nil {
		return nil
	}

	return &model.MailTemplateModel{
		ID:       template.ID,
		Name:     template.Name,
		Subject:  template.Subject,
		Body:     template.Body,
		IsActive: template.IsActive,
	}
}

// MailTemplateFromModel DB 모델을 메일 템플릿 엔티티로 변환
func MailTemplateFromModel(m *model.MailTemplateModel) *entity.MailTemplate {
	if m == nil {
		return nil
	}

	return &entity.MailTemplate{
		ID:        m.ID,
		Name:      m.Name,
		Subject:   m.Subject,
		Body:      m.Body,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
