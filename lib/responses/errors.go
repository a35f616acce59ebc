package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

// NotAuthorizedError is returned whenever a presented capability is not
// bound to the asset the operation targets.
var NotAuthorizedError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "capability does not authorize operations on this asset",
	HttpStatusCode: 401,
}

var InvalidSupplyError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "total supply must be greater than zero",
	HttpStatusCode: 400,
}

var InvalidPriceError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "list price must be greater than zero",
	HttpStatusCode: 400,
}

var NotListedError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "asset is not listed for sale",
	HttpStatusCode: 400,
}

var SupplyExhaustedError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "no licences left for this asset",
	HttpStatusCode: 400,
}

var InsufficientFundsError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "payment does not cover the list price",
	HttpStatusCode: 400,
}

var ListingUnchangedError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "listing flag already has the requested value",
	HttpStatusCode: 400,
}

var AssetNotFoundError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        "asset not found",
	HttpStatusCode: 404,
}

var CapabilityNotFoundError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        "capability not found",
	HttpStatusCode: 404,
}

var CoinNotFoundError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        "coin not found",
	HttpStatusCode: 404,
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
	} else {
		c.JSON(http.StatusInternalServerError, GeneralServerError)
	}
}

// authorization failures are expected noise, everything else is worth a
// sentry report
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	m, ok := he.Message.(echo.Map)
	if !ok {
		return true
	}
	code, ok := m["code"].(int)
	if !ok {
		return true
	}
	return code != NotAuthorizedError.Code
}
