package models

import "time"

type Classroom struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"size:100;not null"`
	Capacity      int    `json:"capacity" gorm:"not null;default:0"`
	Block         string `json:"block" gorm:"size:50"` // ex: "Bloco A", "2º andar"
	HasComputers  bool   `json:"has_computers" gorm:"default:false"`
	Software      string `json:"software" gorm:"type:text"` // lista livre, separada por vírgula
	Description   string `json:"description" gorm:"type:text"`
	ImageFilename string `json:"image_filename" gorm:"size:255"`

	// Deleting a classroom takes its schedules and incidents with it.
	Schedules []Schedule `json:"schedules,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Incidents []Incident `json:"incidents,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
