package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lichub/lichub.go/lib/responses"
	"github.com/lichub/lichub.go/lib/service"
)

// AssetController : Asset controller struct
type AssetController struct {
	svc *service.LichubService
}

func NewAssetController(svc *service.LichubService) *AssetController {
	return &AssetController{svc: svc}
}

type MintAssetRequestBody struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	AssetURL    string `json:"asset_url"`
	// zero is a well-formed value here; the service rejects it with the
	// specific invalid-supply/invalid-price error
	ListPrice   int64  `json:"list_price"`
	TotalSupply int64  `json:"total_supply"`
	Listed      bool   `json:"listed"`
	Recipient   string `json:"recipient" validate:"required"`
	Category    uint8  `json:"category"`
}

type MintAssetResponseBody struct {
	AssetID           string `json:"asset_id"`
	AdminCapabilityID string `json:"admin_capability_id"`
}

// MintAsset godoc
// @Summary      Mint an asset
// @Description  Registers a licensable asset and hands its admin capability to the recipient
// @Accept       json
// @Produce      json
// @Tags         Asset
// @Param        MintAssetRequestBody  body      MintAssetRequestBody  True  "Asset to mint"
// @Success      200                   {object}  MintAssetResponseBody
// @Failure      400                   {object}  responses.ErrorResponse
// @Failure      500                   {object}  responses.ErrorResponse
// @Router       /v2/assets [post]
func (controller *AssetController) MintAsset(c echo.Context) error {
	var body MintAssetRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load mint asset request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid mint asset request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	asset, adminCap, err := controller.svc.MintAsset(c.Request().Context(), service.MintAssetParams{
		Name:        body.Name,
		Description: body.Description,
		AssetURL:    body.AssetURL,
		ListPrice:   body.ListPrice,
		TotalSupply: body.TotalSupply,
		Listed:      body.Listed,
		Recipient:   body.Recipient,
		Category:    body.Category,
	})
	if err != nil {
		c.Logger().Errorf("Failed to mint asset: %v", err)
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, &MintAssetResponseBody{
		AssetID:           asset.ID,
		AdminCapabilityID: adminCap.ID,
	})
}

// GetAsset godoc
// @Summary      Retrieve an asset record
// @Description  Returns one asset record; readable by anyone
// @Produce      json
// @Tags         Asset
// @Param        asset_id  path      string  true  "Asset ID"
// @Success      200       {object}  models.Asset
// @Failure      404       {object}  responses.ErrorResponse
// @Router       /v2/assets/{asset_id} [get]
func (controller *AssetController) GetAsset(c echo.Context) error {
	asset, err := controller.svc.FindAsset(c.Request().Context(), c.Param("asset_id"))
	if err != nil {
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, asset)
}

type UpdateListingRequestBody struct {
	AdminCapabilityID string `json:"admin_capability_id" validate:"required"`
	Listed            *bool  `json:"listed" validate:"required"`
}

type UpdateListingResponseBody struct {
	AssetID string `json:"asset_id"`
	Listed  bool   `json:"listed"`
}

// UpdateListing godoc
// @Summary      Update the listing flag
// @Description  Shows or hides the asset in the marketplace, admin capability required
// @Accept       json
// @Produce      json
// @Tags         Asset
// @Param        asset_id                  path      string                    true  "Asset ID"
// @Param        UpdateListingRequestBody  body      UpdateListingRequestBody  True  "New listing flag"
// @Success      200                       {object}  UpdateListingResponseBody
// @Failure      400                       {object}  responses.ErrorResponse
// @Failure      401                       {object}  responses.ErrorResponse
// @Router       /v2/assets/{asset_id}/listing [put]
func (controller *AssetController) UpdateListing(c echo.Context) error {
	var body UpdateListingRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load update listing request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid update listing request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	asset, err := controller.svc.UpdateListing(c.Request().Context(), c.Param("asset_id"), body.AdminCapabilityID, *body.Listed)
	if err != nil {
		c.Logger().Errorf("Failed to update listing: %v", err)
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, &UpdateListingResponseBody{
		AssetID: asset.ID,
		Listed:  asset.Listed,
	})
}

type WithdrawRequestBody struct {
	AdminCapabilityID string `json:"admin_capability_id" validate:"required"`
	Recipient         string `json:"recipient" validate:"required"`
}

type WithdrawResponseBody struct {
	AssetID   string `json:"asset_id"`
	Amount    int64  `json:"amount"`
	CoinID    string `json:"coin_id"`
	Recipient string `json:"recipient"`
}

// Withdraw godoc
// @Summary      Withdraw accrued proceeds
// @Description  Moves the full accrued balance into a coin owned by the recipient
// @Accept       json
// @Produce      json
// @Tags         Asset
// @Param        asset_id             path      string               true  "Asset ID"
// @Param        WithdrawRequestBody  body      WithdrawRequestBody  True  "Withdrawal recipient"
// @Success      200                  {object}  WithdrawResponseBody
// @Failure      401                  {object}  responses.ErrorResponse
// @Failure      500                  {object}  responses.ErrorResponse
// @Router       /v2/assets/{asset_id}/withdraw [post]
func (controller *AssetController) Withdraw(c echo.Context) error {
	var body WithdrawRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load withdraw request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid withdraw request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	coin, err := controller.svc.Withdraw(c.Request().Context(), c.Param("asset_id"), body.AdminCapabilityID, body.Recipient)
	if err != nil {
		c.Logger().Errorf("Failed to withdraw: %v", err)
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, &WithdrawResponseBody{
		AssetID:   c.Param("asset_id"),
		Amount:    coin.Value,
		CoinID:    coin.ID,
		Recipient: coin.Holder,
	})
}
