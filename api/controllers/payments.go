package controllers

import (
	"net/http"

	"github.com/devisio-app/devisio-backend/api/middleware"
	"github.com/devisio-app/devisio-backend/api/responses"
	"github.com/devisio-app/devisio-backend/api/validators"
	"github.com/devisio-app/devisio-backend/internal/payments"
	pkgerrors "github.com/devisio-app/devisio-backend/pkg/errors"
	"github.com/devisio-app/devisio-backend/pkg/logger"
)

// PaymentAddCredit records a completed payment and extends the subscription.
func PaymentAddCredit(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
			return
		}

		var payload payments.AddCreditRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		credit, err := svc.AddCredit(r.Context(), middleware.UserIDFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, credit)
	}
}

// PaymentList returns the caller's billing history.
func PaymentList(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
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
