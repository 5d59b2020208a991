package model

import "time"

// Attendant is the staff member who receives and processes vehicles.
type Attendant struct {
	Base
	Name     string    `db:"name" json:"name"`
	Phone    string    `db:"phone" json:"phone"`
	Email    string    `db:"email" json:"email"`
	IDNumber string    `db:"id_number" json:"id_number"`
	HireDate time.Time `db:"hire_date" json:"hire_date"`
	IsActive bool      `db:"is_active" json:"is_active"`
}

type CreateAttendantRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"required,max=20"`
	Email    string `json:"email" binding:"required,email"`
	IDNumber string `json:"id_number" binding:"required,max=50"`
}

type UpdateAttendantRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Email    *string `json:"email" binding:"omitempty,email"`
	IDNumber *string `json:"id_number" binding:"omitempty,max=50"`
	IsActive *bool   `json:"is_active"`
}

// AttendantPerformance is the rollup returned by the performance report.
type AttendantPerformance struct {
	Attendant         *Attendant `json:"attendant"`
	ServicesCompleted int        `json:"services_completed"`
	ParkingHandled    int        `json:"parking_handled"`
}
