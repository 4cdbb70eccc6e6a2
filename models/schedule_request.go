package models

import "time"

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

type ScheduleRequest struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	ClassroomID    uint   `json:"classroom_id" gorm:"index;not null"`
	RequesterName  string `json:"requester_name" gorm:"size:120;not null"`
	RequesterEmail string `json:"requester_email" gorm:"size:120;not null"`
	EventName      string `json:"event_name" gorm:"size:120;not null"`
	Description    string `json:"description" gorm:"type:text"`

	RequestedDate string `json:"requested_date" gorm:"size:10;not null"` // primeira data gerada
	DayOfWeek     int    `json:"day_of_week" gorm:"not null"`
	Shift         string `json:"shift" gorm:"size:20;not null"`
	StartTime     string `json:"start_time" gorm:"size:5"`
	EndTime       string `json:"end_time" gorm:"size:5"`

	// Demais datas geradas do pedido em lote, serializadas como JSON
	// (["2024-03-11","2024-03-18", ...]). Vazio em pedido de data única.
	AdditionalDates string `json:"additional_dates" gorm:"type:text"`

	Status     string     `json:"status" gorm:"size:20;not null;default:'pending';index"`
	AdminNotes string     `json:"admin_notes" gorm:"type:text"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	ReviewedBy string     `json:"reviewed_by" gorm:"size:120"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
