package controllers

import (
	"net/http"

	"github.com/skillswaphq/skillswap-backend/api/responses"
	"github.com/skillswaphq/skillswap-backend/internal/analytics"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
	"github.com/skillswaphq/skillswap-backend/pkg/logger"
)

// AnalyticsDashboard serves the aggregated platform snapshot.
func AnalyticsDashboard(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		dashboard, err := svc.Dashboard(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dashboard)
	}
}
