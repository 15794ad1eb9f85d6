package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ============================================================
// Recipes
// ============================================================

func listRecipesHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/recipes")
		defer span.End()

		recipes, err := svc.ListRecipes(ctx, UserIDFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, recipes)
	}
}

func getRecipeHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/recipes/{recipeId}")
		defer span.End()

		recipe, err := svc.GetRecipe(ctx, UserIDFromContext(ctx), chi.URLParam(r, "recipeId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, recipe)
	}
}

func createRecipeHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/recipes")
		defer span.End()

		var recipe domain.Recipe
		if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		recipe.UserID = UserIDFromContext(ctx)

		out, err := svc.CreateRecipe(ctx, &recipe)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

func updateRecipeHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/recipes/{recipeId}")
		defer span.End()

		var recipe domain.Recipe
		if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		recipe.ID = chi.URLParam(r, "recipeId")
		recipe.UserID = UserIDFromContext(ctx)

		out, err := svc.UpdateRecipe(ctx, &recipe)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func deleteRecipeHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/recipes/{recipeId}")
		defer span.End()

		if err := svc.DeleteRecipe(ctx, UserIDFromContext(ctx), chi.URLParam(r, "recipeId")); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ============================================================
// Production runs
// ============================================================

func listProductionHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/production")
		defer span.End()

		runs, err := svc.ListProductionRuns(ctx, UserIDFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, runs)
	}
}

func createProductionHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/production")
		defer span.End()

		var run domain.ProductionRun
		if err := json.NewDecoder(r.Body).Decode(&run); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		run.UserID = UserIDFromContext(ctx)

		out, err := svc.CreateProductionRun(ctx, &run)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

func deleteProductionHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/production/{runId}")
		defer span.End()

		if err := svc.DeleteProductionRun(ctx, UserIDFromContext(ctx), chi.URLParam(r, "runId")); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
