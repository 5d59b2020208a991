package model

import "time"

// Customer owns vehicles, service requests, parking records and payments.
// Deleting a customer cascades to all of them.
type Customer struct {
	Base
	Name           string    `db:"name" json:"name"`
	Phone          string    `db:"phone" json:"phone"`
	Email          string    `db:"email" json:"email"`
	IDNumber       string    `db:"id_number" json:"id_number"`
	Address        string    `db:"address" json:"address"`
	DateRegistered time.Time `db:"date_registered" json:"date_registered"`
	IsActive       bool      `db:"is_active" json:"is_active"`
}

type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"required,max=20"`
	Email    string `json:"email" binding:"required,email"`
	IDNumber string `json:"id_number" binding:"required,max=50"`
	Address  string `json:"address" binding:"required"`
}

type UpdateCustomerRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Email    *string `json:"email" binding:"omitempty,email"`
	IDNumber *string `json:"id_number" binding:"omitempty,max=50"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

// CustomerSummary is the rollup returned by the customer summary report.
type CustomerSummary struct {
	Customer       *Customer         `json:"customer"`
	VehiclesCount  int               `json:"vehicles_count"`
	TotalSpent     float64           `json:"total_spent"`
	RecentServices []*ServiceRequest `json:"recent_services"`
	RecentParking  []*Parking        `json:"recent_parking"`
}
