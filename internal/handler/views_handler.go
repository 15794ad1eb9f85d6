package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rividoceria/doceria-api/internal/service"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Derived views: dashboard, monthly report, day summary, restock
// ============================================================

func dashboardHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/dashboard")
		defer span.End()

		userID := UserIDFromContext(ctx)
		span.SetAttributes(attribute.String("user.id", userID))

		ref, ok := queryDate(r, "date")
		if !ok {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}

		dash, err := svc.GetDashboard(ctx, userID, ref)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, dash)
	}
}

func monthlyReportHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/reports/monthly")
		defer span.End()

		userID := UserIDFromContext(ctx)

		var year, month int
		monthParam := r.URL.Query().Get("month")
		if monthParam == "" {
			now := time.Now()
			year, month = now.Year(), int(now.Month())
		} else if _, err := fmt.Sscanf(monthParam, "%4d-%2d", &year, &month); err != nil || month < 1 || month > 12 {
			writeError(w, http.StatusBadRequest, "month must be YYYY-MM")
			return
		}

		result, err := svc.GetMonthlyResult(ctx, userID, year, time.Month(month))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func daySummaryHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/transactions/summary/daily")
		defer span.End()

		userID := UserIDFromContext(ctx)

		day, ok := queryDate(r, "date")
		if !ok {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}

		summary, err := svc.GetDaySummary(ctx, userID, day)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

func restockHandler(svc *service.BusinessService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/ingredients/restock")
		defer span.End()

		userID := UserIDFromContext(ctx)

		items, err := svc.GetPurchaseList(ctx, userID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}
