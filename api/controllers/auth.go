package controllers

import (
	"net/http"

	"github.com/tabledesk/tabledesk-backend/api/responses"
	"github.com/tabledesk/tabledesk-backend/api/validators"
	"github.com/tabledesk/tabledesk-backend/internal/auth"
	"github.com/tabledesk/tabledesk-backend/pkg/logger"
)

// AuthRegister creates a new customer or manager account.
func AuthRegister(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body auth.RegisterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessageData(w, http.StatusCreated, "User registered successfully", result)
	}
}

// AuthLogin exchanges credentials for a signed access token.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
