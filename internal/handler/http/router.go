package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worklens-hq/worklens-backend-go/internal/handler/http/middleware"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	calendarHandler CalendarHandler,
	requestHandler RequestHandler,
	scheduleHandler ScheduleHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worklens"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)

				r.Route("/calendar", func(r chi.Router) {
					r.Get("/my", calendarHandler.GetMyCalendar)

					// Manager only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Get("/", calendarHandler.GetEmployeeCalendar)
					})
				})

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/daily", calendarHandler.GetDailyOverview)
				})
			})

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", requestHandler.Submit)
				r.Get("/my", requestHandler.ListMine)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", requestHandler.List)
					r.Post("/{id}/approve", requestHandler.Approve)
					r.Post("/{id}/reject", requestHandler.Reject)
				})
			})

			r.Route("/schedules/weekly-off", func(r chi.Router) {
				r.Get("/my", scheduleHandler.GetMyWeeklyOff)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/{employeeID}", scheduleHandler.GetWeeklyOff)
					r.Put("/{employeeID}", scheduleHandler.UpdateWeeklyOff)
				})
			})

			// Owner only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireOwner)
				r.Post("/", userHandler.Create)
				r.Post("/{id}/deactivate", userHandler.Deactivate)
			})
		})
	})

	return r
}
