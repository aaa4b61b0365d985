package mapper

import (
	"time"

	"automart-be/internal/entity"
	"automart-be/internal/model"
)

type RoleRequestMapper struct{}

func NewRoleRequestMapper() *RoleRequestMapper {
	return &RoleRequestMapper{}
}

func (m *RoleRequestMapper) ToEntity(r *model.RoleChangeRequest) *entity.RoleChangeRequest {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		u := r.UpdatedAt
		updatedAt = &u
	}

	return &entity.RoleChangeRequest{
		Id:            r.Id,
		UserId:        r.UserId,
		RequestedRole: entity.UserRole(r.RequestedRole),
		Reason:        r.Reason,
		Status:        entity.RoleRequestStatus(r.Status),
		ReviewedBy:    r.ReviewedBy,
		ReviewNote:    r.ReviewNote,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *RoleRequestMapper) ToModel(r *entity.RoleChangeRequest) *model.RoleChangeRequest {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.RoleChangeRequest{
		Id:            r.Id,
		UserId:        r.UserId,
		RequestedRole: string(r.RequestedRole),
		Reason:        r.Reason,
		Status:        string(r.Status),
		ReviewedBy:    r.ReviewedBy,
		ReviewNote:    r.ReviewNote,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *RoleRequestMapper) ToEntities(reqs []*model.RoleChangeRequest) []*entity.RoleChangeRequest {
	entities := make([]*entity.RoleChangeRequest, len(reqs))
	for i, r := range reqs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
