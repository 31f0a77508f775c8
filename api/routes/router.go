package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tabledesk/tabledesk-backend/api/controllers"
	"github.com/tabledesk/tabledesk-backend/api/middleware"
	"github.com/tabledesk/tabledesk-backend/internal/admin"
	"github.com/tabledesk/tabledesk-backend/internal/auth"
	"github.com/tabledesk/tabledesk-backend/internal/queue"
	"github.com/tabledesk/tabledesk-backend/internal/reservations"
	"github.com/tabledesk/tabledesk-backend/internal/tables"
	"github.com/tabledesk/tabledesk-backend/pkg/config"
	"github.com/tabledesk/tabledesk-backend/pkg/db"
	"github.com/tabledesk/tabledesk-backend/pkg/enums"
	"github.com/tabledesk/tabledesk-backend/pkg/logger"
	"github.com/tabledesk/tabledesk-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           *db.Client
	Redis        *redis.Client
	Auth         auth.Service
	Tables       tables.Service
	Queue        queue.Service
	Reservations reservations.Service
	Admin        admin.Service
}

// NewRouter wires the full route tree: public auth endpoints, the
// authenticated customer surface, the manager-only floor controls,
// and the admin back office.
func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		p.Config.AuthRateLimit.LoginWindow,
		p.Config.AuthRateLimit.LoginIPLimit,
		p.Config.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		p.Config.AuthRateLimit.RegisterWindow,
		p.Config.AuthRateLimit.RegisterIPLimit,
		p.Config.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(p.DB, p.Redis, p.Logger))
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, p.Logger)).
			Post("/register", controllers.AuthRegister(p.Auth, p.Logger))
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, p.Logger)).
			Post("/login", controllers.AuthLogin(p.Auth, p.Logger))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(p.Config.JWT, p.Logger))

		r.Route("/api/tables", func(r chi.Router) {
			r.Get("/", controllers.TablesList(p.Tables, p.Logger))
			r.Get("/available", controllers.TablesAvailable(p.Tables, p.Logger))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(string(enums.RoleManager), p.Logger))
				r.Post("/", controllers.TablesCreate(p.Tables, p.Logger))
				r.Put("/{id}", controllers.TablesUpdate(p.Tables, p.Logger))
				r.Delete("/{id}", controllers.TablesDelete(p.Tables, p.Logger))
				r.Post("/{id}/seat", controllers.TablesSeat(p.Tables, p.Logger))
				r.Post("/{id}/vacate", controllers.TablesVacate(p.Tables, p.Logger))
			})
		})

		r.Route("/api/queue", func(r chi.Router) {
			r.Get("/", controllers.QueueList(p.Queue, p.Logger))
			r.Post("/join", controllers.QueueJoin(p.Queue, p.Logger))
			r.Get("/my-position", controllers.QueueMyPosition(p.Queue, p.Logger))
			r.Delete("/leave", controllers.QueueLeave(p.Queue, p.Logger))
		})

		r.Route("/api/reservations", func(r chi.Router) {
			r.Get("/", controllers.ReservationsList(p.Reservations, p.Logger))
			r.Post("/", controllers.ReservationsCreate(p.Reservations, p.Logger))
			r.Delete("/{id}", controllers.ReservationsCancel(p.Reservations, p.Logger))
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.RoleAdmin), p.Logger))
			r.Get("/users", controllers.AdminUsersList(p.Admin, p.Logger))
			r.Delete("/users/{id}", controllers.AdminUsersDelete(p.Admin, p.Logger))
			r.Get("/analytics", controllers.AdminAnalytics(p.Admin, p.Logger))
			r.Get("/reservations", controllers.AdminReservations(p.Admin, p.Logger))
			r.Get("/queue", controllers.AdminQueue(p.Admin, p.Logger))
		})
	})

	return r
}
