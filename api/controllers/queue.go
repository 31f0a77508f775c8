package controllers

import (
	"net/http"

	"github.com/tabledesk/tabledesk-backend/api/middleware"
	"github.com/tabledesk/tabledesk-backend/api/responses"
	"github.com/tabledesk/tabledesk-backend/api/validators"
	"github.com/tabledesk/tabledesk-backend/internal/queue"
	"github.com/tabledesk/tabledesk-backend/pkg/logger"
)

// QueueList returns the current waitlist in position order.
func QueueList(svc queue.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// QueueJoin puts the caller on the waitlist.
func QueueJoin(svc queue.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body queue.JoinRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customerID := middleware.UserIDFromContext(r.Context())
		result, err := svc.Join(r.Context(), customerID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessageData(w, http.StatusOK, "Joined queue successfully", result)
	}
}

// QueueMyPosition returns the caller's waitlist slot, or empty data
// when they are not queued.
func QueueMyPosition(svc queue.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.UserIDFromContext(r.Context())
		out, err := svc.Position(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// QueueLeave drops the caller from the waitlist.
func QueueLeave(svc queue.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.UserIDFromContext(r.Context())
		if err := svc.Leave(r.Context(), customerID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "Left queue successfully")
	}
}
