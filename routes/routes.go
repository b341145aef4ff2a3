package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Dosada05/tournament-hub/handlers"
	"github.com/Dosada05/tournament-hub/middleware"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Profile    *handlers.ProfileHandler
	Team       *handlers.TeamHandler
	Tournament *handlers.TournamentHandler
	Match      *handlers.MatchHandler
	WebSocket  *handlers.WebSocketHandler
}

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	Logger         *slog.Logger
}

// SetupRoutes mounts the JSON API under /api, the profile redirect, the live
// websocket rooms and the swagger UI.
func SetupRoutes(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.Authenticate(opts.JWTSecret, opts.Logger))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/profile", h.Profile.RedirectProfile)
	r.Get("/ws/tournaments/{tournamentId}", h.WebSocket.ServeWs)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/search", h.User.Search)
			r.Get("/{userId}", h.User.GetPublicProfile)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", h.Profile.GetProfile)
			r.Put("/avatar", h.Profile.UploadAvatar)
		})

		r.Route("/results/{matchId}", func(r chi.Router) {
			r.Get("/", h.Match.GetResult)
			r.With(middleware.RequireAuth).Put("/", h.Match.RecordResult)
		})

		r.Route("/teams/{tournamentId}", func(r chi.Router) {
			r.Get("/", h.Team.ListByTournament)
			r.With(middleware.RequireAuth).Post("/", h.Team.RegisterTeam)
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.Tournament.List)
			r.With(middleware.RequireAuth).Post("/", h.Tournament.Create)

			r.Route("/{tournamentId}", func(r chi.Router) {
				r.Get("/", h.Tournament.GetByID)
				r.Get("/matches", h.Match.ListMatches)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAuth)
					r.Patch("/status", h.Tournament.UpdateStatus)
					r.Post("/matches", h.Match.ScheduleMatch)
					r.Post("/schedule", h.Match.GenerateSchedule)
				})
			})
		})
	})

	return r
}
