// Package handler wires the HTTP surface: chi router, JWT auth, and the
// per-resource handlers delegating to the business service.
package handler

import (
	"net/http"
	"time"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/infra/observability"
	"github.com/rividoceria/doceria-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// NewRouter creates the HTTP router with all routes and middleware.
// Everything under /v1 requires a valid Supabase JWT.
func NewRouter(svc *service.BusinessService, metrics *observability.Metrics, jwtSecret string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(svc, logger))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {
		r.Use(JWTAuthMiddleware(jwtSecret, logger))

		// Derived views
		r.Get("/dashboard", dashboardHandler(svc, logger))
		r.Get("/reports/monthly", monthlyReportHandler(svc, logger))
		r.Get("/transactions/summary/daily", daySummaryHandler(svc, logger))
		r.Get("/ingredients/restock", restockHandler(svc, logger))

		// Ingredients & packaging
		r.Get("/ingredients", listIngredientsHandler(svc, logger))
		r.Post("/ingredients", createIngredientHandler(svc, logger))
		r.Get("/ingredients/{ingredientId}", getIngredientHandler(svc, logger))
		r.Put("/ingredients/{ingredientId}", updateIngredientHandler(svc, logger))
		r.Delete("/ingredients/{ingredientId}", deleteIngredientHandler(svc, logger))

		// Recipes
		r.Get("/recipes", listRecipesHandler(svc, logger))
		r.Post("/recipes", createRecipeHandler(svc, logger))
		r.Get("/recipes/{recipeId}", getRecipeHandler(svc, logger))
		r.Put("/recipes/{recipeId}", updateRecipeHandler(svc, logger))
		r.Delete("/recipes/{recipeId}", deleteRecipeHandler(svc, logger))

		// Production
		r.Get("/production", listProductionHandler(svc, logger))
		r.Post("/production", createProductionHandler(svc, logger))
		r.Delete("/production/{runId}", deleteProductionHandler(svc, logger))

		// Cash ledger
		r.Get("/transactions", listTransactionsHandler(svc, logger))
		r.Post("/transactions", createTransactionHandler(svc, logger))
		r.Put("/transactions/{transactionId}", updateTransactionHandler(svc, logger))
		r.Delete("/transactions/{transactionId}", deleteTransactionHandler(svc, logger))

		// Bills
		r.Get("/bills", listBillsHandler(svc, logger))
		r.Post("/bills", createBillHandler(svc, logger))
		r.Put("/bills/{billId}", updateBillHandler(svc, logger))
		r.Delete("/bills/{billId}", deleteBillHandler(svc, logger))
		r.Post("/bills/{billId}/pay", payBillHandler(svc, logger))
		r.Post("/bills/{billId}/unpay", unpayBillHandler(svc, logger))

		// Categories
		r.Get("/categories", listCategoriesHandler(svc, logger))
		r.Post("/categories", createCategoryHandler(svc, logger))
		r.Put("/categories/{categoryId}", updateCategoryHandler(svc, logger))
		r.Delete("/categories/{categoryId}", deleteCategoryHandler(svc, logger))

		// Product categories
		r.Get("/product-categories", listProductCategoriesHandler(svc, logger))
		r.Post("/product-categories", createProductCategoryHandler(svc, logger))
		r.Put("/product-categories/{categoryId}", updateProductCategoryHandler(svc, logger))
		r.Delete("/product-categories/{categoryId}", deleteProductCategoryHandler(svc, logger))

		// Goals
		r.Get("/goals", listGoalsHandler(svc, logger))
		r.Post("/goals", createGoalHandler(svc, logger))
		r.Put("/goals/{goalId}", updateGoalHandler(svc, logger))
		r.Delete("/goals/{goalId}", deleteGoalHandler(svc, logger))

		// Settings
		r.Get("/settings", getSettingsHandler(svc, logger))
		r.Put("/settings", updateSettingsHandler(svc, logger))

		// Operational metrics snapshot
		r.Get("/ops/summary", opsSummaryHandler(metrics))
	})

	return r
}

// ============================================================
// Operational endpoints
// ============================================================

func healthzHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		now := time.Now().Format(time.RFC3339)

		services := []domain.ServiceHealth{
			{Name: "doceria-api", Status: "healthy", LatencyMs: 0, LastChecked: now},
		}

		if svc != nil {
			start := time.Now()
			_, err := svc.ListCategories(ctx, "health-check")
			latency := time.Since(start).Milliseconds()
			status := "healthy"
			if err != nil {
				logger.Warn("healthz: supabase check failed", zap.Error(err))
				status = "degraded"
			}
			services = append(services, domain.ServiceHealth{
				Name: "supabase", Status: status, LatencyMs: latency, LastChecked: now,
			})
		}

		overallStatus := "healthy"
		for _, s := range services {
			if s.Status == "degraded" {
				overallStatus = "degraded"
			}
		}

		writeJSON(w, http.StatusOK, domain.HealthStatus{
			Status:   overallStatus,
			Services: services,
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func opsSummaryHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetOpsSummary())
	}
}
