package controllers

import (
	"context"
	"net/http"

	"github.com/skillswaphq/skillswap-backend/api/responses"
	"github.com/skillswaphq/skillswap-backend/pkg/config"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
	"github.com/skillswaphq/skillswap-backend/pkg/logger"
)

// ReadyCheck verifies one backing dependency.
type ReadyCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SkillSwap-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, checks ...ReadyCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SkillSwap-Env", cfg.App.Env)
		for _, check := range checks {
			if check.Ping == nil {
				continue
			}
			if err := check.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, check.Name+" unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
