package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	staticIconsPrefix = "/static/icons/"

	reviewIDParam     = "reviewID"
	restaurantIDParam = "restaurantID"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withMetrics, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics)
	}
	if h.iconDir != "" {
		router.Method(http.MethodGet, staticIconsPrefix+"*", withStaticHeaders(
			http.StripPrefix(staticIconsPrefix, http.FileServer(http.Dir(h.iconDir)))))
	}

	router.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/me", h.me)
			r.Put("/me/nickname", h.changeNickname)
			r.Put("/me/icon", h.changeIcon)

			r.Get("/review", h.listMyReviews)
			r.Get("/review/{"+reviewIDParam+"}", h.getReview)
			r.Put("/review/{"+reviewIDParam+"}", h.updateReview)
			r.Delete("/review/{"+reviewIDParam+"}", h.deleteReview)
		})
	})

	router.Route("/api/restaurant/{"+restaurantIDParam+"}", func(r chi.Router) {
		r.With(h.optionalAuth).Get("/", h.getRestaurant)
		r.Get("/reviews", h.listRestaurantReviews)
		r.With(h.auth).Post("/reviews", h.createReview)
		r.With(h.auth).Post("/scrap", h.toggleScrap)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrRouteNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
