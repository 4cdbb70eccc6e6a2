package models

import "time"

type Schedule struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ClassroomID uint   `json:"classroom_id" gorm:"index;not null"`
	DayOfWeek   int    `json:"day_of_week" gorm:"not null"`   // 0=segunda .. 6=domingo
	Shift       string `json:"shift" gorm:"size:20;not null"` // morning|afternoon|night|fullday
	CourseName  string `json:"course_name" gorm:"size:120"`
	Instructor  string `json:"instructor" gorm:"size:120"`
	StartTime   string `json:"start_time" gorm:"size:5"` // HH:MM
	EndTime     string `json:"end_time" gorm:"size:5"`   // HH:MM

	// Janela de validade (YYYY-MM-DD, inclusiva). Vazio = sem limite.
	StartDate string `json:"start_date" gorm:"size:10"`
	EndDate   string `json:"end_date" gorm:"size:10"`

	IsActive bool `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Permanent reports whether the schedule has no complete validity window.
// A permanent schedule occupies its slot on every matching weekday.
func (s *Schedule) Permanent() bool {
	return s.StartDate == "" || s.EndDate == ""
}

// ValidOn reports whether the schedule applies on the given date (YYYY-MM-DD).
// Dates are compared lexically, which is safe for the ISO format.
func (s *Schedule) ValidOn(date string) bool {
	if s.Permanent() {
		return true
	}
	return s.StartDate <= date && date <= s.EndDate
}
