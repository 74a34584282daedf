package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avelez/portfolio-backend/models"
)

// Ordering names a sort direction over the manual display-order column. The
// admin list and the public API deliberately sort in opposite directions, so
// each read path passes its own.
type Ordering string

const (
	OrderAscending  Ordering = "orders ASC"
	OrderDescending Ordering = "orders DESC"
)

type ProjectRepo struct {
	db    *gorm.DB
	table string
}

func NewProjectRepo(db *gorm.DB, table string) *ProjectRepo {
	return &ProjectRepo{db: db, table: table}
}

// FindAll returns every project sorted by the given ordering.
func (r *ProjectRepo) FindAll(order Ordering) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Table(r.table).Order(string(order)).Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its primary key.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Table(r.table).Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project and echoes the generated id back onto it.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Table(r.table).Create(project).Error
}

// UpdateByID updates the row matched strictly by primary key and reports how
// many rows matched. The filter must stay on the id column: orders is not
// unique and must never be used as an update key.
func (r *ProjectRepo) UpdateByID(id uuid.UUID, project *models.Project) (int64, error) {
	result := r.db.Table(r.table).Where("id = ?", id).Updates(map[string]any{
		"title":        project.Title,
		"subtitle":     project.Subtitle,
		"description":  project.Description,
		"image_link":   project.ImageLink,
		"source_link":  project.SourceLink,
		"year":         project.Year,
		"orders":       project.Orders,
		"tags":         project.Tags,
		"technologies": project.Technologies,
	})
	return result.RowsAffected, result.Error
}

// DeleteByID removes the row matched by primary key and reports how many rows
// matched.
func (r *ProjectRepo) DeleteByID(id uuid.UUID) (int64, error) {
	result := r.db.Table(r.table).Where("id = ?", id).Delete(&models.Project{})
	return result.RowsAffected, result.Error
}
