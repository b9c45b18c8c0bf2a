package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/hbarmarket/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

// JsonResponse is the envelope of every api response.
type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// statusOf maps the error taxonomy to http statuses, first match wins.
var statusOf = []struct {
	status int
	errs   []error
}{
	{http.StatusNotFound, []error{domain.ErrNotFound, domain.ErrContractNotFound}},
	{http.StatusConflict, []error{domain.ErrNotApproved, domain.ErrListingInactive, domain.ErrNotListingCreator, domain.ErrUnsupportedCurrency}},
	{http.StatusUnauthorized, []error{domain.ErrUnauthorized, domain.ErrInvalidSignature}},
	{http.StatusForbidden, []error{domain.ErrUserRejected}},
	{http.StatusUnprocessableEntity, []error{domain.ErrInsufficientFunds, domain.ErrContractRevert, domain.ErrConstructorRequirement}},
	{http.StatusBadGateway, []error{domain.ErrReadFailed}},
}

// MakeJsonResp writes data in the envelope. An error is rendered as its user
// facing message and its kind may override status.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = ErrorStatus(err, status)
		data = domain.UserMessage(err)
	}

	switch {
	case status >= 400:
		return c.JSON(status, JsonResponse{Data: data, Status: JsonResponseStatusFail})
	case status >= 200 && status < 300:
		return c.JSON(status, JsonResponse{Data: data, Status: JsonResponseStatusSuccess})
	default:
		return c.JSON(status, data)
	}
}

// ErrorStatus returns the http status of err, or fallback when err is not
// part of the taxonomy.
func ErrorStatus(err error, fallback int) int {
	if domain.IsValidationError(err) {
		return http.StatusBadRequest
	}
	for _, s := range statusOf {
		for _, target := range s.errs {
			if errors.Is(err, target) {
				return s.status
			}
		}
	}
	return fallback
}
