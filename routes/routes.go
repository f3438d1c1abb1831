package routes

import (
	"net/http"

	"github.com/esportivai/backend/handlers"
	"github.com/esportivai/backend/middleware"
	"github.com/esportivai/backend/services"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	sportHandler *handlers.SportHandler,
	eventHandler *handlers.EventHandler,
	participationHandler *handlers.ParticipationHandler,
	tokens services.TokenService,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API EsportiVai rodando!"))
	})

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{id}", userHandler.GetProfile)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
			r.Get("/{userId}/events", userHandler.ListOrganizedEvents)
			r.Get("/{userId}/participations", userHandler.ListParticipations)
			r.Get("/{userId}/upcoming-events", userHandler.ListUpcomingEvents)
			r.Get("/{userId}/subscribed-events", userHandler.ListSubscribedEvents)
			r.Get("/{userId}/past-events", userHandler.ListPastEvents)
		})

		r.Route("/sports", func(r chi.Router) {
			r.Get("/{userId}", sportHandler.ListByUser)
			r.Post("/", sportHandler.Register)
			r.Put("/{id}", sportHandler.UpdateSkillLevel)
			r.Delete("/{id}", sportHandler.Remove)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/{userId}", eventHandler.ListEligible)
			r.Get("/byID/{id}", eventHandler.GetByID)
			r.Put("/{id}", eventHandler.Update)
			r.Delete("/{id}", eventHandler.Delete)
			r.Post("/{eventId}/participate", eventHandler.Participate)
			r.Get("/{eventId}/participants", eventHandler.ListParticipants)

			// The organizer subtree is the authenticated surface: a valid
			// token whose user id matches the userId parameter.
			r.Route("/organizer/{userId}", func(r chi.Router) {
				r.Use(middleware.Authenticate(tokens))
				r.Use(middleware.RequireSameUser)
				r.Get("/", eventHandler.ListByOrganizer)
				r.Post("/", eventHandler.Create)
			})
		})

		r.Route("/participations", func(r chi.Router) {
			r.Get("/{id}", participationHandler.ListByUser)
			r.Put("/{id}", participationHandler.Update)
			r.Delete("/{id}", participationHandler.Delete)
		})
	})
}
