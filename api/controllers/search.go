package controllers

import (
	"net/http"

	"github.com/skillswaphq/skillswap-backend/api/responses"
	"github.com/skillswaphq/skillswap-backend/api/validators"
	"github.com/skillswaphq/skillswap-backend/internal/search"
	pkgerrors "github.com/skillswaphq/skillswap-backend/pkg/errors"
	"github.com/skillswaphq/skillswap-backend/pkg/logger"
)

// SearchUsers filters the visible member roster by skill, location, rating
// and availability.
func SearchUsers(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "search service unavailable"))
			return
		}

		filters := search.Filters{
			Skill:        validators.ParseQueryString(r, "skill", ""),
			Location:     validators.ParseQueryString(r, "location", ""),
			Rating:       validators.ParseQueryString(r, "rating", ""),
			Availability: validators.ParseQueryString(r, "availability", ""),
		}

		results, err := svc.Users(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, results)
	}
}
