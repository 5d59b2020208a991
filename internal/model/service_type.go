package model

// ServiceType is a catalog entry for an offered wash service. A service type
// referenced by any service request cannot be deleted.
type ServiceType struct {
	Base
	Name                 string  `db:"name" json:"name"`
	Description          string  `db:"description" json:"description"`
	BasePrice            float64 `db:"base_price" json:"base_price"`
	EstimatedTimeMinutes int     `db:"estimated_time_minutes" json:"estimated_time_minutes"`
	IsActive             bool    `db:"is_active" json:"is_active"`
}

type CreateServiceTypeRequest struct {
	Name                 string  `json:"name" binding:"required,max=100"`
	Description          string  `json:"description" binding:"required"`
	BasePrice            float64 `json:"base_price" binding:"gte=0"`
	EstimatedTimeMinutes int     `json:"estimated_time_minutes" binding:"required,gt=0"`
}

type UpdateServiceTypeRequest struct {
	Name                 *string  `json:"name" binding:"omitempty,max=100"`
	Description          *string  `json:"description"`
	BasePrice            *float64 `json:"base_price" binding:"omitempty,gte=0"`
	EstimatedTimeMinutes *int     `json:"estimated_time_minutes" binding:"omitempty,gt=0"`
	IsActive             *bool    `json:"is_active"`
}
