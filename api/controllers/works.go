package controllers

import (
	"net/http"

	"github.com/devisio-app/devisio-backend/api/middleware"
	"github.com/devisio-app/devisio-backend/api/responses"
	"github.com/devisio-app/devisio-backend/api/validators"
	"github.com/devisio-app/devisio-backend/internal/works"
	pkgerrors "github.com/devisio-app/devisio-backend/pkg/errors"
	"github.com/devisio-app/devisio-backend/pkg/logger"
)

// WorkCreate adds a pricing catalog entry for the caller.
func WorkCreate(svc works.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work service unavailable"))
			return
		}

		var payload works.CreateWorkRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), middleware.UserIDFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// WorkList returns the caller's pricing catalog.
func WorkList(svc works.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work service unavailable"))
			return
		}

		listing, err := svc.GetAllForUser(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listing)
	}
}

// WorkGet returns one catalog entry owned by the caller.
func WorkGet(svc works.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work service unavailable"))
			return
		}

		workID, err := pathID(r, "workID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		work, err := svc.GetByIDForUser(r.Context(), middleware.UserIDFromContext(r.Context()), workID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, work)
	}
}

// WorkUpdate adjusts the mutable fields of a catalog entry.
func WorkUpdate(svc works.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work service unavailable"))
			return
		}

		workID, err := pathID(r, "workID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload works.UpdateWorkRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateByIDForUser(r.Context(), middleware.UserIDFromContext(r.Context()), workID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// WorkDelete removes a catalog entry owned by the caller.
func WorkDelete(svc works.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "work service unavailable"))
			return
		}

		workID, err := pathID(r, "workID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteByIDForUser(r.Context(), middleware.UserIDFromContext(r.Context()), workID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
