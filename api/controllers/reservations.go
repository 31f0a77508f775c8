package controllers

import (
	"net/http"

	"github.com/tabledesk/tabledesk-backend/api/middleware"
	"github.com/tabledesk/tabledesk-backend/api/responses"
	"github.com/tabledesk/tabledesk-backend/api/validators"
	"github.com/tabledesk/tabledesk-backend/internal/reservations"
	"github.com/tabledesk/tabledesk-backend/pkg/enums"
	"github.com/tabledesk/tabledesk-backend/pkg/logger"
)

// ReservationsList returns bookings scoped by the caller's role:
// customers see only their own, staff see everything.
func ReservationsList(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.UserIDFromContext(r.Context())
		role := enums.Role(middleware.RoleFromContext(r.Context()))

		result, err := svc.List(r.Context(), customerID, role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if role == enums.RoleCustomer {
			responses.WriteSuccess(w, result.Own)
			return
		}
		responses.WriteSuccess(w, result.All)
	}
}

// ReservationsCreate books a table for the caller.
func ReservationsCreate(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body reservations.CreateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customerID := middleware.UserIDFromContext(r.Context())
		if err := svc.Create(r.Context(), customerID, body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusCreated, "Reservation created successfully")
	}
}

// ReservationsCancel releases a booked table. Customers can only cancel
// their own booking; staff can cancel any.
func ReservationsCancel(svc reservations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tableID, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customerID := middleware.UserIDFromContext(r.Context())
		role := enums.Role(middleware.RoleFromContext(r.Context()))
		if err := svc.Cancel(r.Context(), tableID, customerID, role); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "Reservation cancelled successfully")
	}
}
