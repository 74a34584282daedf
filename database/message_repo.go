package database

import (
	"gorm.io/gorm"

	"github.com/avelez/portfolio-backend/models"
)

type MessageRepo struct {
	db    *gorm.DB
	table string
}

func NewMessageRepo(db *gorm.DB, table string) *MessageRepo {
	return &MessageRepo{db: db, table: table}
}

// Add persists a contact message. Messages are write-only, nothing reads them
// back through this service.
func (r *MessageRepo) Add(message *models.Message) error {
	return r.db.Table(r.table).Create(message).Error
}
