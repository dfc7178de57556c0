package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/praiaclube/beachtennis-system/docs"
	"github.com/praiaclube/beachtennis-system/handlers"
	"github.com/praiaclube/beachtennis-system/middleware"
	"github.com/praiaclube/beachtennis-system/models"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Auth        *handlers.AuthHandler
	Category    *handlers.CategoryHandler
	Participant *handlers.ParticipantHandler
	Pair        *handlers.PairHandler
	Tournament  *handlers.TournamentHandler
	Match       *handlers.MatchHandler
	Quick       *handlers.QuickHandler
	Sponsor     *handlers.SponsorHandler
	Dashboard   *handlers.DashboardHandler
	WebSocket   *handlers.WebSocketHandler

	JWTSecret      string
	AllowedOrigins []string
}

// SetupRoutes mounts the full API surface. Reads are public, catalog writes
// require a staff token and destructive operations require an admin token.
// Quick tournaments are fully public: the unguessable link is the
// credential.
func SetupRoutes(router *chi.Mux, deps Deps) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	staffOnly := func(r chi.Router) chi.Router {
		return r.With(
			middleware.Authenticate(deps.JWTSecret),
			middleware.Authorize(models.RoleAdmin, models.RoleStaff),
		)
	}
	adminOnly := func(r chi.Router) chi.Router {
		return r.With(
			middleware.Authenticate(deps.JWTSecret),
			middleware.Authorize(models.RoleAdmin),
		)
	}

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", deps.Auth.Register)
		r.Post("/login", deps.Auth.Login)
		r.With(middleware.Authenticate(deps.JWTSecret)).Get("/me", deps.Auth.Me)
	})

	router.Route("/categories", func(r chi.Router) {
		r.Get("/", deps.Category.List)
		r.Get("/{categoryID}", deps.Category.GetByID)
		staffOnly(r).Post("/", deps.Category.Create)
		staffOnly(r).Put("/{categoryID}", deps.Category.Update)
		adminOnly(r).Delete("/{categoryID}", deps.Category.Delete)
	})

	router.Route("/participants", func(r chi.Router) {
		r.Get("/", deps.Participant.List)
		r.Get("/{participantID}", deps.Participant.GetByID)
		staffOnly(r).Post("/", deps.Participant.Create)
		staffOnly(r).Put("/{participantID}", deps.Participant.Update)
		adminOnly(r).Delete("/{participantID}", deps.Participant.Delete)
	})

	router.Route("/pairs", func(r chi.Router) {
		r.Get("/", deps.Pair.List)
		r.Get("/{pairID}", deps.Pair.GetByID)
		staffOnly(r).Post("/", deps.Pair.Create)
		staffOnly(r).Post("/randomize", deps.Pair.Randomize)
		staffOnly(r).Put("/{pairID}", deps.Pair.Update)
		adminOnly(r).Delete("/{pairID}", deps.Pair.Delete)
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", deps.Tournament.List)
		r.Get("/{tournamentID}", deps.Tournament.GetByID)
		r.Get("/{tournamentID}/standings", deps.Tournament.Standings)
		r.Get("/{tournamentID}/participants", deps.Tournament.ListParticipants)
		r.Get("/{tournamentID}/matches", deps.Match.ListByTournament)

		staffOnly(r).Post("/", deps.Tournament.Create)
		staffOnly(r).Put("/{tournamentID}", deps.Tournament.Update)
		adminOnly(r).Delete("/{tournamentID}", deps.Tournament.Delete)

		staffOnly(r).Post("/{tournamentID}/participants", deps.Tournament.AddParticipants)
		staffOnly(r).Post("/{tournamentID}/pairs", deps.Tournament.ManualPair)
		staffOnly(r).Post("/{tournamentID}/pairs/randomize", deps.Tournament.AutoPair)
		staffOnly(r).Post("/{tournamentID}/groups", deps.Tournament.AssignGroups)
		staffOnly(r).Post("/{tournamentID}/matches/generate", deps.Tournament.GenerateGroupMatches)
		staffOnly(r).Post("/{tournamentID}/knockout/advance", deps.Tournament.AdvanceKnockout)
		staffOnly(r).Post("/{tournamentID}/matches", deps.Match.Create)
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/{matchID}", deps.Match.GetByID)
		staffOnly(r).Put("/{matchID}/result", deps.Match.RecordResult)
		staffOnly(r).Put("/{matchID}/quick-result", deps.Match.RecordQuickResult)
		adminOnly(r).Delete("/{matchID}", deps.Match.Delete)
	})

	router.Route("/quick-tournaments", func(r chi.Router) {
		r.Post("/", deps.Quick.Create)
		r.Get("/", deps.Quick.List)
		r.Route("/{publicID}", func(r chi.Router) {
			r.Get("/", deps.Quick.GetByPublicID)
			r.Get("/standings", deps.Quick.Standings)
			r.Post("/pairs", deps.Quick.ManualPair)
			r.Post("/pairs/randomize", deps.Quick.RandomizePairs)
			r.Post("/matches", deps.Quick.RecordMatch)
			r.Put("/matches/{matchID}", deps.Quick.UpdateMatch)
			r.Post("/finalize", deps.Quick.Finalize)
			r.Delete("/", deps.Quick.Delete)
		})
	})

	router.Route("/sponsors", func(r chi.Router) {
		r.Get("/", deps.Sponsor.List)
		r.Get("/{sponsorID}", deps.Sponsor.GetByID)
		staffOnly(r).Post("/", deps.Sponsor.Create)
		staffOnly(r).Put("/{sponsorID}", deps.Sponsor.Update)
		staffOnly(r).Post("/{sponsorID}/logo", deps.Sponsor.UploadLogo)
		adminOnly(r).Delete("/{sponsorID}", deps.Sponsor.Delete)
	})

	router.Get("/dashboard", deps.Dashboard.Summary)

	router.Get("/ws/tournaments/{tournamentID}", deps.WebSocket.TournamentFeed)
}
