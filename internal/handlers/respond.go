package handlers

import (
	"errors"
	"net/http"

	"jurisight/internal/logger"
	"jurisight/internal/reqctx"
	"jurisight/internal/services"
	"jurisight/internal/utils/helpers"
	"jurisight/internal/workflow"

	"go.uber.org/zap"
)

// writeServiceError maps a service error onto the HTTP error taxonomy.
// Internals of unexpected errors stay in the log, never in the response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var permErr *services.PermissionError
	var valErr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, "not found")
	case errors.As(err, &permErr):
		helpers.Error(w, http.StatusForbidden, permErr.Reason)
	case errors.As(err, &valErr):
		helpers.Error(w, http.StatusBadRequest, valErr.Error())
	default:
		logger.WithCtx(r.Context()).Error("unexpected error", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

// actorFromCtx pulls the authenticated actor out of the request context.
func actorFromCtx(r *http.Request) (int64, workflow.Role, bool) {
	userID, ok1 := reqctx.GetUserID(r.Context())
	role, ok2 := reqctx.GetRole(r.Context())
	return userID, role, ok1 && ok2
}
