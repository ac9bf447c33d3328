package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jhoicas/foodforgood-api/internal/application/auth"
	"github.com/jhoicas/foodforgood-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	DonationUC   *usecase.DonationUseCase
	AuthRecorder authRecorder // métricas de registro/login; puede ser nil
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Users (público): registro y login, con rate limit contra fuerza bruta.
	users := api.Group("/users", limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
	}))
	authHandler := NewAuthHandler(deps.AuthUC, deps.AuthRecorder)
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)

	// Donations (protegido: requiere x-auth-token)
	donations := api.Group("/donations", AuthMiddleware(deps.JWTSecret))
	donationHandler := NewDonationHandler(deps.DonationUC)
	donations.Post("/", donationHandler.Create)
	donations.Get("/", donationHandler.List)
	donations.Get("/:id", donationHandler.GetByID)
	donations.Put("/:id", donationHandler.UpdateStatus)
}
