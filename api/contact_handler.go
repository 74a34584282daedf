package api

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelez/portfolio-backend/errs"
	"github.com/avelez/portfolio-backend/models"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	messages  MessageStore
	notifier  MessageNotifier
}

func newContactHandler(messages MessageStore, notifier MessageNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		messages:  messages,
		notifier:  notifier,
	}
}

// submitMessage validates and persists a contact form submission, then fires
// a best-effort notification. Notification failure never fails the request.
func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Malformed form submission."))
			return
		}

		message, err := models.ParseMessageForm(r.PostForm)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.messages.Add(message); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause(
				fmt.Sprintf("Failed to save message: %v.", err), err))
			return
		}

		if h.notifier != nil {
			if err := h.notifier.NotifyNewMessage(message); err != nil {
				h.logger.Warn().Err(err).Msg("failed to send contact notification")
			}
		}

		h.responder.WriteJSON(w, http.StatusOK, MutationResponse{
			Success: true,
			Message: "Your message has been sent successfully!",
		})
	}
}
