package api

import (
	"net/http"

	"nova-ecart-be/internal/logger"
	"nova-ecart-be/internal/middleware"
	"nova-ecart-be/internal/payment"
	"nova-ecart-be/internal/product"
	"nova-ecart-be/internal/seller"
	"nova-ecart-be/internal/user"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Deps struct {
	Users    user.Service
	Products product.Service
	Sellers  seller.Service
	Payments payment.Service

	// AllowedOrigins feeds the CORS policy; typically the storefront URL.
	AllowedOrigins []string
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(chimw.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.Auth)
	r.Use(middleware.RateLimit)

	authH := NewAuthHandler(deps.Users)
	productH := NewProductHandler(deps.Products)
	sellerH := NewSellerHandler(deps.Sellers)
	paymentH := NewPaymentHandler(deps.Payments)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Nova Ecart Backend API",
			"version": "1.0.0",
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "Nova Ecart Backend",
		})
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/sign-up", authH.SignUp)
		r.Post("/sign-in", authH.SignIn)
		r.With(middleware.RequireAuth).Post("/sign-out", authH.SignOut)
		r.With(middleware.RequireAuth).Get("/user", authH.Me)
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", productH.List)
		r.Get("/{id}", productH.Get)
		r.Get("/seller/{seller_id}", productH.ListBySeller)
		r.With(middleware.RequireAuth).Post("/", productH.Create)
		r.With(middleware.RequireAuth).Put("/{id}", productH.Update)
		r.With(middleware.RequireAuth).Delete("/{id}", productH.Delete)
	})

	r.Route("/api/sellers", func(r chi.Router) {
		r.Get("/", sellerH.List)
		r.Get("/{id}", sellerH.Get)
		r.Get("/user/{user_id}", sellerH.GetByUser)
		r.With(middleware.RequireAuth).Post("/", sellerH.Create)
		r.With(middleware.RequireAuth).Put("/{id}", sellerH.Update)
		r.With(middleware.RequireAdmin).Post("/{id}/approve", sellerH.Approve)
		r.With(middleware.RequireAdmin).Post("/{id}/reject", sellerH.Reject)
	})

	r.Route("/api/cryptomus", func(r chi.Router) {
		r.With(middleware.RequireAuth).Post("/payment", paymentH.CreatePayment)
		r.Post("/callback", paymentH.Callback)
		r.Get("/status/{order_id}", paymentH.Status)
		r.With(middleware.RequireAuth).Get("/orders", paymentH.Orders)
	})

	return r
}
