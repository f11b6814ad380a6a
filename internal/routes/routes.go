package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/recipebox/recipebox-backend/internal/handlers"
	"github.com/recipebox/recipebox-backend/internal/middleware"
)

// SetupRoutes configures all application routes on a fresh mux
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	usersHandler *handlers.UsersHandler,
	recipesHandler *handlers.RecipesHandler,
	healthHandler *handlers.HealthHandler,
	googleAuthHandler *handlers.GoogleAuthHandler,
	authMW *middleware.AuthMiddleware,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check routes
	mux.HandleFunc("/healthz", healthHandler.HealthCheck)
	mux.HandleFunc("/livez", healthHandler.LivenessCheck)
	mux.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// API documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Token routes
	mux.HandleFunc("/api/v1/token", post(authHandler.Token))
	mux.HandleFunc("/api/v1/token/refresh", post(authHandler.Refresh))

	// User routes; registration is the only unauthenticated one
	mux.HandleFunc("/api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			authHandler.Register(w, r)
		case http.MethodGet:
			authMW.RequireAuth(usersHandler.List)(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/v1/users/", authMW.RequireAuth(usersHandler.UserDetail))
	mux.HandleFunc("/api/v1/me", authMW.RequireAuth(usersHandler.Me))

	// Recipe routes
	mux.HandleFunc("/api/v1/recipes", authMW.RequireAuth(recipesHandler.Recipes))
	mux.HandleFunc("/api/v1/recipes/", authMW.RequireAuth(recipesHandler.RecipeDetail))

	// Google OAuth routes
	mux.HandleFunc("/api/v1/auth/google/login", googleAuthHandler.GoogleLogin)
	mux.HandleFunc("/api/v1/auth/google/callback", googleAuthHandler.GoogleCallback)

	// Root route
	mux.HandleFunc("/", rootHandler)

	return mux
}

func post(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Recipe Box backend is running."))
}
