package database

import (
	"context"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/avelez/portfolio-backend/database/migrations"
)

// Database aggregates the repositories over a shared GORM instance. Table
// names are fixed configuration resolved once at startup, never discovered at
// request time.
type Database struct {
	db          *gorm.DB
	projectRepo *ProjectRepo
	messageRepo *MessageRepo
}

func New(db *gorm.DB, projectsTable, messagesTable string) Database {
	return Database{
		db:          db,
		projectRepo: NewProjectRepo(db, projectsTable),
		messageRepo: NewMessageRepo(db, messagesTable),
	}
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}

// RunMigrations applies the embedded goose migrations.
func (d Database) RunMigrations(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, sqlDB, ".")
}
