package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/rogerio-castellano/grillaway/docs"
	"github.com/rogerio-castellano/grillaway/internal/http/handlers"
	rl "github.com/rogerio-castellano/grillaway/internal/http/rate_limiter"
	"github.com/rogerio-castellano/grillaway/internal/metrics"
	"github.com/rogerio-castellano/grillaway/internal/shop"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Deps struct {
	Shop           *shop.Shop
	Recorder       *metrics.Recorder
	Limiter        *rl.Limiter // nil disables rate limiting
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(d Deps) http.Handler {
	if d.Recorder == nil {
		d.Recorder = metrics.NewRecorder()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if len(d.AllowedOrigins) == 0 {
		d.AllowedOrigins = []string{"*"}
	}

	h := handlers.NewServer(d.Shop, d.Recorder, d.Logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(d.Logger, d.Recorder))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.HealthHandler)
	r.Handle("/metrics", d.Recorder.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(d.Limiter.Middleware)
		}

		r.Get("/products", h.GetProductsHandler)
		r.Get("/products/{id}", h.GetProductByIDHandler)
		r.Get("/filter", h.GetFilterHandler)
		r.Put("/filter", h.SetFilterHandler)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCartHandler)
			r.Delete("/", h.ClearCartHandler)
			r.Post("/items", h.AddCartItemHandler)
			r.Patch("/items/{id}", h.ChangeCartItemQtyHandler)
			r.Delete("/items/{id}", h.RemoveCartItemHandler)
		})

		r.Get("/checkout/summary", h.GetCheckoutSummaryHandler)
		r.Post("/checkout", h.PlaceOrderHandler)

		r.Get("/orders", h.GetOrdersHandler)
		r.Get("/orders/{id}", h.TrackOrderHandler)

		r.Route("/admin/products", func(r chi.Router) {
			r.Post("/", h.CreateProductHandler)
			r.Post("/import", h.ImportProductsHandler)
			r.Put("/{id}", h.UpdateProductHandler)
			r.Delete("/{id}", h.DeleteProductHandler)
		})

		r.Get("/metrics/dashboard", h.GetDashboardMetricsHandler)
	})

	return r
}
