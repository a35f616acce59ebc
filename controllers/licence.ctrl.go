package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lichub/lichub.go/lib/responses"
	"github.com/lichub/lichub.go/lib/service"
)

// LicenceController : Licence controller struct
type LicenceController struct {
	svc *service.LichubService
}

func NewLicenceController(svc *service.LichubService) *LicenceController {
	return &LicenceController{svc: svc}
}

type MintLicenceRequestBody struct {
	CoinID    string `json:"coin_id" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
}

type MintLicenceResponseBody struct {
	LicenceCapabilityID string `json:"licence_capability_id"`
	AssetID             string `json:"asset_id"`
	Recipient           string `json:"recipient"`
}

// MintLicence godoc
// @Summary      Buy a licence
// @Description  Sells one licence unit against a listed asset, paid from the presented coin
// @Accept       json
// @Produce      json
// @Tags         Licence
// @Param        asset_id                path      string                  true  "Asset ID"
// @Param        MintLicenceRequestBody  body      MintLicenceRequestBody  True  "Payment coin and recipient"
// @Success      200                     {object}  MintLicenceResponseBody
// @Failure      400                     {object}  responses.ErrorResponse
// @Failure      500                     {object}  responses.ErrorResponse
// @Router       /v2/assets/{asset_id}/licences [post]
func (controller *LicenceController) MintLicence(c echo.Context) error {
	var body MintLicenceRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load mint licence request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid mint licence request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	licenceCap, err := controller.svc.MintLicence(c.Request().Context(), c.Param("asset_id"), body.CoinID, body.Recipient)
	if err != nil {
		c.Logger().Errorf("Failed to mint licence: %v", err)
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, &MintLicenceResponseBody{
		LicenceCapabilityID: licenceCap.ID,
		AssetID:             licenceCap.AssetID,
		Recipient:           licenceCap.Holder,
	})
}

type TransferLicenceRequestBody struct {
	AssetID   string `json:"asset_id" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
}

type TransferLicenceResponseBody struct {
	LicenceCapabilityID string `json:"licence_capability_id"`
	AssetID             string `json:"asset_id"`
	Recipient           string `json:"recipient"`
}

// TransferLicence godoc
// @Summary      Transfer a licence
// @Description  Reassigns a licence capability to a new holder
// @Accept       json
// @Produce      json
// @Tags         Licence
// @Param        licence_id                  path      string                      true  "Licence capability ID"
// @Param        TransferLicenceRequestBody  body      TransferLicenceRequestBody  True  "Asset and new holder"
// @Success      200                         {object}  TransferLicenceResponseBody
// @Failure      401                         {object}  responses.ErrorResponse
// @Failure      500                         {object}  responses.ErrorResponse
// @Router       /v2/licences/{licence_id}/transfer [post]
func (controller *LicenceController) TransferLicence(c echo.Context) error {
	var body TransferLicenceRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load transfer licence request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid transfer licence request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	licenceCap, err := controller.svc.TransferLicence(c.Request().Context(), body.AssetID, c.Param("licence_id"), body.Recipient)
	if err != nil {
		c.Logger().Errorf("Failed to transfer licence: %v", err)
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, &TransferLicenceResponseBody{
		LicenceCapabilityID: licenceCap.ID,
		AssetID:             licenceCap.AssetID,
		Recipient:           licenceCap.Holder,
	})
}
