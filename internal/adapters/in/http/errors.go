package http

import (
	"errors"
	"net/http"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

var errMissingCaller = errors.New("missing " + HeaderUserID + " or " + HeaderUserRole + " header")

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: message})
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, errorResponse{Code: http.StatusForbidden, Message: message})
}

// writeError maps use case errors to status codes. Anything unrecognised is a 500
// and its text is not exposed.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errMissingCaller):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrRecipientNotFound),
		errors.Is(err, commands.ErrDeliverymanNotFound),
		errors.Is(err, commands.ErrNotificationNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrOperationNotAllowed):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status, message = http.StatusBadRequest, err.Error()
	}

	if status == http.StatusInternalServerError {
		ctx.Logger().Errorf("request failed: %v", err)
	}
	return ctx.JSON(status, errorResponse{Code: status, Message: message})
}

func callerFrom(ctx echo.Context) (user.Caller, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	rawRole := ctx.Request().Header.Get(HeaderUserRole)
	if rawID == "" || rawRole == "" {
		return user.Caller{}, errMissingCaller
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return user.Caller{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserID, err)
	}
	role, err := user.ParseRole(rawRole)
	if err != nil {
		return user.Caller{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserRole, err)
	}

	return user.NewCaller(id, role)
}

func orderAndCaller(ctx echo.Context) (kernel.UUID, user.Caller, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, user.Caller{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	caller, err := callerFrom(ctx)
	if err != nil {
		return kernel.UUID{}, user.Caller{}, err
	}
	return orderID, caller, nil
}
