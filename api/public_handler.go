package api

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelez/portfolio-backend/database"
	"github.com/avelez/portfolio-backend/errs"
	"github.com/avelez/portfolio-backend/models"
)

type publicHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
}

func newPublicHandler(projects ProjectStore) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()

	return publicHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// listProjects serves the public project listing: ascending display order,
// positional ids, display fallbacks for missing fields, and per-row tag
// normalization that never aborts the listing. An empty table yields [].
func (h publicHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll(database.OrderAscending)
		if err != nil {
			dbErr := errs.NewDatabaseError("list", "projects", err)

			var message string
			switch {
			case errs.IsDatabaseConnectionError(dbErr):
				message = "Cannot connect to database. Please check your connection and database configuration."
			case errs.IsDatabaseTimeoutError(dbErr):
				message = "Database connection timeout. Please try again."
			default:
				message = fmt.Sprintf("Failed to load projects: %v", err)
			}

			h.responder.WriteError(w, errs.NewInternalErrorWithCause(message, err))
			return
		}

		views := make([]models.PublicProjectView, 0, len(projects))
		for i, project := range projects {
			views = append(views, project.PublicView(i+1))
		}

		h.responder.WriteJSON(w, http.StatusOK, views)
	}
}
