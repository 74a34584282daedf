package api

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelez/portfolio-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	password  string
	secret    []byte
	tokenTTL  time.Duration
}

func newAuthHandler(password string, secret []byte, tokenTTL time.Duration) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		password:  password,
		secret:    secret,
		tokenTTL:  tokenTTL,
	}
}

// login checks the admin password and issues a short-lived JWT for the admin
// routes.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Malformed form submission."))
			return
		}

		if h.password == "" || len(h.secret) == 0 {
			h.responder.WriteError(w, errs.NewInternalError("Admin authentication is not configured."))
			return
		}

		if r.PostFormValue("password") != h.password {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid password."))
			return
		}

		now := time.Now()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": adminSubject,
			"iat": now.Unix(),
			"exp": now.Add(h.tokenTTL).Unix(),
		})

		signed, err := token.SignedString(h.secret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("Failed to issue token.", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, TokenResponse{Token: signed})
	}
}
