package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelez/portfolio-backend/database"
	"github.com/avelez/portfolio-backend/errs"
	"github.com/avelez/portfolio-backend/models"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
}

func newProjectHandler(projects ProjectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// listProjects returns every project for the admin panel, ordered by display
// order descending (the public API sorts the other way).
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll(database.OrderDescending)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "projects", err))
			return
		}

		views := make([]AdminProjectView, 0, len(projects))
		for i, project := range projects {
			views = append(views, newAdminProjectView(project, i))
		}

		h.responder.WriteJSON(w, http.StatusOK, views)
	}
}

// createProject validates the submitted form and inserts a new project,
// echoing the persisted row (with its generated id) back in the envelope.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Malformed form submission."))
			return
		}

		project, err := models.ParseProjectForm(r.PostForm)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projects.Add(project); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause(
				fmt.Sprintf("Failed to create project: %v", err), err))
			return
		}

		h.logger.Info().Str("projectID", project.ID.String()).Msg("project created")
		h.responder.WriteSuccess(w, "Project created successfully!", project)
	}
}

// updateProject updates an existing project matched strictly by its persisted
// id. Draft placeholder ids signal a client-side sync bug and are rejected
// before the store is touched.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Malformed form submission."))
			return
		}

		rawID := strings.TrimSpace(r.PostFormValue("id"))
		if rawID == "" || strings.TrimSpace(r.PostFormValue("title")) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Project ID and title are required for update."))
			return
		}

		identifier, err := models.ParseIdentifier(rawID)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid project ID."))
			return
		}
		if identifier.IsDraft() {
			h.logger.Warn().Str("id", rawID).Msg("attempted to update a draft project")
			h.responder.WriteError(w, errs.NewBadRequestError(
				"Cannot update unsaved project. Please ensure project has a valid ID."))
			return
		}

		project, err := models.ParseProjectForm(r.PostForm)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, _ := identifier.UUID()
		rowsAffected, err := h.projects.UpdateByID(id, project)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause(
				fmt.Sprintf("Failed to update project: %v", err), err))
			return
		}
		if rowsAffected == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError(
				fmt.Sprintf("Project not found or no changes applied for ID: %s", rawID)))
			return
		}

		updated, err := h.projects.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteSuccess(w, "Project updated successfully!", updated)
	}
}

// deleteProject removes a project matched strictly by its persisted id.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Malformed form submission."))
			return
		}

		rawID := strings.TrimSpace(r.PostFormValue("id"))
		if rawID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Project ID is required for deletion."))
			return
		}

		identifier, err := models.ParseIdentifier(rawID)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid project ID."))
			return
		}
		if identifier.IsDraft() {
			h.logger.Warn().Str("id", rawID).Msg("attempted to delete a draft project")
			h.responder.WriteError(w, errs.NewBadRequestError(
				"Cannot delete unsaved project. Please ensure project has a valid ID."))
			return
		}

		id, _ := identifier.UUID()
		rowsAffected, err := h.projects.DeleteByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause(
				fmt.Sprintf("Failed to delete project: %v", err), err))
			return
		}
		if rowsAffected == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError(
				fmt.Sprintf("Project not found for ID: %s", rawID)))
			return
		}

		h.responder.WriteSuccess(w, "Project deleted successfully!", nil)
	}
}
