package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/clientedev/salasv2/config"
	"github.com/clientedev/salasv2/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.Classroom{},
		&models.Schedule{},
		&models.ScheduleRequest{},
		&models.Incident{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	// Bases antigas não têm a coluna hidden_from_classroom (ela era criada
	// por ALTER TABLE dentro das requisições). Garantimos aqui, uma vez só,
	// que o schema está completo antes de atender qualquer request.
	if !DB.Migrator().HasColumn(&models.Incident{}, "hidden_from_classroom") {
		if err := DB.Migrator().AddColumn(&models.Incident{}, "HiddenFromClassroom"); err != nil {
			log.Fatalf("migrate incident.hidden_from_classroom failed: %v", err)
		}
	}
}
