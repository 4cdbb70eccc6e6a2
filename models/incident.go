package models

import "time"

type Incident struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	ClassroomID   uint       `json:"classroom_id" gorm:"index;not null"`
	ReporterName  string     `json:"reporter_name" gorm:"size:120;not null"`
	ReporterEmail string     `json:"reporter_email" gorm:"size:120;not null"`
	Description   string     `json:"description" gorm:"type:text;not null"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	IsResolved    bool       `json:"is_resolved" gorm:"default:false"`
	AdminResponse string     `json:"admin_response" gorm:"type:text"`
	ResponseDate  *time.Time `json:"response_date"`

	// Tira a ocorrência da página pública da sala sem apagar o registro.
	HiddenFromClassroom bool `json:"hidden_from_classroom" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
