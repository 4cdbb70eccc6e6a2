package database

import "github.com/clientedev/salasv2/models"

// GormRoomStore implements scheduling.RoomStore over the shared DB handle.
type GormRoomStore struct{}

func (GormRoomStore) ListClassrooms() ([]models.Classroom, error) {
	var rooms []models.Classroom
	if err := DB.Order("name ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// GormScheduleStore implements scheduling.ScheduleStore over the shared
// DB handle. An empty shift matches every shift.
type GormScheduleStore struct{}

func (GormScheduleStore) ListActive(dayOfWeek int, shift string) ([]models.Schedule, error) {
	tx := DB.Where("day_of_week = ? AND is_active = ?", dayOfWeek, true)
	if shift != "" {
		tx = tx.Where("shift = ?", shift)
	}
	var rows []models.Schedule
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
