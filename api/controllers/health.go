package controllers

import (
	"context"
	"net/http"

	"go.uber.org/multierr"

	"github.com/tabledesk/tabledesk-backend/api/responses"
	pkgerrors "github.com/tabledesk/tabledesk-backend/pkg/errors"
	"github.com/tabledesk/tabledesk-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive reports process liveness.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// HealthReady reports readiness by pinging the hard dependencies.
func HealthReady(dbPing, redisPing pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var errs error
		if dbPing != nil {
			errs = multierr.Append(errs, dbPing.Ping(r.Context()))
		}
		if redisPing != nil {
			errs = multierr.Append(errs, redisPing.Ping(r.Context()))
		}
		if errs != nil {
			err := pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "readiness check")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
