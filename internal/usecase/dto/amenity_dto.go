package dto

import "github.com/flat-catalog/internal/domain"

type AmenityCreateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=250"`
}

type AmenityUpdateRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=250"`
}

func (r *AmenityCreateRequest) ToDomain() *domain.Amenity {
	return &domain.Amenity{Name: r.Name}
}

func (r *AmenityUpdateRequest) ToPatch() domain.AmenityPatch {
	return domain.AmenityPatch{Name: r.Name}
}
