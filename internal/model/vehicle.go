package model

import "github.com/google/uuid"

type VehicleType string

const (
	VehicleTypeSedan     VehicleType = "sedan"
	VehicleTypeSUV       VehicleType = "suv"
	VehicleTypeTruck     VehicleType = "truck"
	VehicleTypeVan       VehicleType = "van"
	VehicleTypeHatchback VehicleType = "hatchback"
	VehicleTypePickup    VehicleType = "pickup"
	VehicleTypeOther     VehicleType = "other"
)

type VehicleColor string

const (
	VehicleColorWhite  VehicleColor = "white"
	VehicleColorBlack  VehicleColor = "black"
	VehicleColorRed    VehicleColor = "red"
	VehicleColorBlue   VehicleColor = "blue"
	VehicleColorSilver VehicleColor = "silver"
	VehicleColorGray   VehicleColor = "gray"
	VehicleColorOther  VehicleColor = "other"
)

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeSedan, VehicleTypeSUV, VehicleTypeTruck, VehicleTypeVan,
		VehicleTypeHatchback, VehicleTypePickup, VehicleTypeOther:
		return true
	}
	return false
}

func (c VehicleColor) Valid() bool {
	switch c {
	case VehicleColorWhite, VehicleColorBlack, VehicleColorRed, VehicleColorBlue,
		VehicleColorSilver, VehicleColorGray, VehicleColorOther:
		return true
	}
	return false
}

// Vehicle belongs to exactly one customer.
type Vehicle struct {
	Base
	CustomerID  uuid.UUID    `db:"customer_id" json:"customer_id"`
	PlateNumber string       `db:"plate_number" json:"plate_number"`
	VehicleType VehicleType  `db:"vehicle_type" json:"vehicle_type"`
	Color       VehicleColor `db:"color" json:"color"`
	Make        string       `db:"make" json:"make"`
	Model       string       `db:"model" json:"model"`
	Year        int          `db:"year" json:"year"`
	VIN         *string      `db:"vin" json:"vin,omitempty"`
	IsActive    bool         `db:"is_active" json:"is_active"`
}

type CreateVehicleRequest struct {
	CustomerID  uuid.UUID    `json:"customer_id" binding:"required"`
	PlateNumber string       `json:"plate_number" binding:"required,max=20"`
	VehicleType VehicleType  `json:"vehicle_type" binding:"required,vehicle_type"`
	Color       VehicleColor `json:"color" binding:"required,vehicle_color"`
	Make        string       `json:"make" binding:"required,max=50"`
	Model       string       `json:"model" binding:"required,max=50"`
	Year        int          `json:"year" binding:"required"`
	VIN         *string      `json:"vin" binding:"omitempty,max=100"`
}

type UpdateVehicleRequest struct {
	PlateNumber *string       `json:"plate_number" binding:"omitempty,max=20"`
	VehicleType *VehicleType  `json:"vehicle_type" binding:"omitempty,vehicle_type"`
	Color       *VehicleColor `json:"color" binding:"omitempty,vehicle_color"`
	Make        *string       `json:"make" binding:"omitempty,max=50"`
	Model       *string       `json:"model" binding:"omitempty,max=50"`
	Year        *int          `json:"year"`
	VIN         *string       `json:"vin" binding:"omitempty,max=100"`
	IsActive    *bool         `json:"is_active"`
}

// VehicleServiceHistory pairs a vehicle with its service requests.
type VehicleServiceHistory struct {
	Vehicle  *Vehicle          `json:"vehicle"`
	Services []*ServiceRequest `json:"services"`
}
