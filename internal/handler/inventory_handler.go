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
// Ingredients & packaging
// ============================================================

func listIngredientsHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/ingredients")
		defer span.End()

		items, err := svc.ListIngredients(ctx, UserIDFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func getIngredientHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/ingredients/{ingredientId}")
		defer span.End()

		ing, err := svc.GetIngredient(ctx, UserIDFromContext(ctx), chi.URLParam(r, "ingredientId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, ing)
	}
}

func createIngredientHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/ingredients")
		defer span.End()

		var ing domain.Ingredient
		if err := json.NewDecoder(r.Body).Decode(&ing); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		ing.UserID = UserIDFromContext(ctx)

		out, err := svc.CreateIngredient(ctx, &ing)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

func updateIngredientHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/ingredients/{ingredientId}")
		defer span.End()

		var ing domain.Ingredient
		if err := json.NewDecoder(r.Body).Decode(&ing); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		ing.ID = chi.URLParam(r, "ingredientId")
		ing.UserID = UserIDFromContext(ctx)

		out, err := svc.UpdateIngredient(ctx, &ing)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func deleteIngredientHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/ingredients/{ingredientId}")
		defer span.End()

		if err := svc.DeleteIngredient(ctx, UserIDFromContext(ctx), chi.URLParam(r, "ingredientId")); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
