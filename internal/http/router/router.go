package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"shiphub/internal/http/handlers"
)

const requestTimeout = 5 * time.Second

// New constructs the chi router. mws run after the base middleware, in order.
// A nil metrics handler leaves /metrics unrouted.
func New(
	h *handlers.Handlers,
	req *handlers.RequestHandler,
	co *handlers.CompanyHandler,
	metrics http.Handler,
	mws ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	for _, mw := range mws {
		if mw != nil {
			r.Use(mw)
		}
	}

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", req.Create)
		r.Get("/", req.List)
		r.Put("/status", req.UpdateStatus)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", req.Get)
			r.Post("/submit-offer", req.SubmitOffer)
			r.Put("/warehouses", req.AssignWarehouses)
			r.Get("/activity", req.History)
			r.Post("/activity", req.AppendActivity)
		})
	})

	r.Post("/company/requests", req.CompanyAction)

	r.Route("/companies", func(r chi.Router) {
		r.Post("/", co.Create)
		r.Get("/", co.List)
		r.Get("/{id}", co.GetByID)
		r.Patch("/{id}", co.Update)
		r.Get("/{id}/requests", req.ListForCompany)
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
