package controllers

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/lichub/lichub.go/lib/responses"
	"github.com/lichub/lichub.go/lib/service"
)

var errorResponses = map[error]responses.ErrorResponse{
	service.ErrInvalidSupply:      responses.InvalidSupplyError,
	service.ErrInvalidPrice:       responses.InvalidPriceError,
	service.ErrNotAuthorized:      responses.NotAuthorizedError,
	service.ErrNotListed:          responses.NotListedError,
	service.ErrSupplyExhausted:    responses.SupplyExhaustedError,
	service.ErrInsufficientFunds:  responses.InsufficientFundsError,
	service.ErrListingUnchanged:   responses.ListingUnchangedError,
	service.ErrAssetNotFound:      responses.AssetNotFoundError,
	service.ErrCapabilityNotFound: responses.CapabilityNotFoundError,
	service.ErrCoinNotFound:       responses.CoinNotFoundError,
}

// writeErrorResponse renders a transition failure from the closed taxonomy.
// Anything outside the taxonomy bubbles up to the HTTP error handler.
func writeErrorResponse(c echo.Context, err error) error {
	for sentinel, response := range errorResponses {
		if errors.Is(err, sentinel) {
			return c.JSON(response.HttpStatusCode, response)
		}
	}
	return err
}
