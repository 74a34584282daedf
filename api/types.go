package api

import (
	"github.com/google/uuid"

	"github.com/avelez/portfolio-backend/database"
	"github.com/avelez/portfolio-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	publicHandler  publicHandler
	contactHandler contactHandler
	authHandler    authHandler
}

// ProjectStore is the persistence gateway for project rows. Mutations filter
// strictly by primary key and report how many rows matched.
type ProjectStore interface {
	FindAll(order database.Ordering) ([]models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	UpdateByID(id uuid.UUID, project *models.Project) (int64, error)
	DeleteByID(id uuid.UUID) (int64, error)
}

// MessageStore is the persistence gateway for contact messages.
type MessageStore interface {
	Add(message *models.Message) error
}

// MessageNotifier delivers a notification for a saved contact message.
// Delivery is best-effort and never fails the request.
type MessageNotifier interface {
	NotifyNewMessage(message *models.Message) error
}

// MutationResponse is the success envelope returned by every admin mutation.
type MutationResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Project *models.Project `json:"project,omitempty"`
}

// FailureResponse is the failure envelope shared by every endpoint.
type FailureResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// TokenResponse carries the JWT issued by the admin login.
type TokenResponse struct {
	Token string `json:"token"`
}

// AdminProjectView is a project as the admin list serves it: raw columns with
// a string id, backfilled with a draft placeholder when the row lacks one.
type AdminProjectView struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Subtitle     *string  `json:"subtitle"`
	Description  *string  `json:"description"`
	ImageLink    *string  `json:"image_link"`
	SourceLink   *string  `json:"source_link"`
	Year         int      `json:"year"`
	Orders       int      `json:"orders"`
	Tags         []string `json:"tags"`
	Technologies []string `json:"technologies"`
}

func newAdminProjectView(project models.Project, index int) AdminProjectView {
	identifier := models.PersistedIdentifier(project.ID)
	if project.ID == uuid.Nil {
		identifier = models.DraftIdentifier(index)
	}

	return AdminProjectView{
		ID:           identifier.String(),
		Title:        project.Title,
		Subtitle:     project.Subtitle,
		Description:  project.Description,
		ImageLink:    project.ImageLink,
		SourceLink:   project.SourceLink,
		Year:         project.Year,
		Orders:       project.Orders,
		Tags:         models.DecodeStringList(project.Tags),
		Technologies: models.DecodeStringList(project.Technologies),
	}
}
