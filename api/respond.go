package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/avelez/portfolio-backend/errs"
	"github.com/avelez/portfolio-backend/models"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON writes data with the given status. Marshaling happens before the
// header so an encoding failure can still become a 500.
func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteSuccess writes the mutation success envelope. project may be nil for
// operations with nothing to echo back.
func (r Responder) WriteSuccess(w http.ResponseWriter, message string, project *models.Project) {
	r.WriteJSON(w, http.StatusOK, MutationResponse{
		Success: true,
		Message: message,
		Project: project,
	})
}

// WriteError converts any failure into the {error:true, message} envelope.
// Unexpected errors are logged and reported as a generic 500 so no internal
// detail leaks and no request goes unanswered.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.WriteJSON(w, http.StatusInternalServerError, FailureResponse{
			Error:   true,
			Message: "An unexpected error occurred. Please try again later.",
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Msg(apiErr.Error())
	}

	r.WriteJSON(w, apiErr.StatusCode, FailureResponse{
		Error:   true,
		Message: apiErr.Error(),
	})
}
