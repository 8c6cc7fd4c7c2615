package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const dashboardReportCacheKey = "report_dashboard"

// GetDashboardReport serves the admin dashboard metrics, cached in Redis
// for a short TTL since the dashboard polls and the counts change slowly.
func (h *Handler) GetDashboardReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Minute)
	defer cancel()

	cached, err := h.redisClient.Get(ctx, dashboardReportCacheKey).Result()
	if err == nil {
		report := &domain.DashboardReport{}
		if err := json.Unmarshal([]byte(cached), report); err == nil {
			h.successResponse(w, r, "report fetched", report)
			return
		}
		// fall through and regenerate on a corrupt cache entry
	} else if !errors.Is(err, redis.Nil) {
		h.internalServerError(w, r, err)
		return
	}

	report, err := h.repository.GetDashboardReport()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	payload, err := json.Marshal(report)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.redisClient.Set(ctx, dashboardReportCacheKey, payload, time.Duration(h.config.Redis.ReportCacheTTL)*time.Second).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "report fetched", report)
}
