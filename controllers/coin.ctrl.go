package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lichub/lichub.go/lib/responses"
	"github.com/lichub/lichub.go/lib/service"
)

// CoinController : Coin controller struct
//
// Faucet for the wallet collaborator. Production deployments gate this with
// the admin token and drive it from their payment rail.
type CoinController struct {
	svc *service.LichubService
}

func NewCoinController(svc *service.LichubService) *CoinController {
	return &CoinController{svc: svc}
}

type CreateCoinRequestBody struct {
	Holder string `json:"holder" validate:"required"`
	Value  int64  `json:"value" validate:"gte=0"`
}

type CreateCoinResponseBody struct {
	CoinID string `json:"coin_id"`
	Holder string `json:"holder"`
	Value  int64  `json:"value"`
}

// CreateCoin godoc
// @Summary      Create a coin
// @Description  Funds a holder with spendable value
// @Accept       json
// @Produce      json
// @Tags         Coin
// @Param        CreateCoinRequestBody  body      CreateCoinRequestBody  True  "Holder and value"
// @Success      200                    {object}  CreateCoinResponseBody
// @Failure      400                    {object}  responses.ErrorResponse
// @Failure      500                    {object}  responses.ErrorResponse
// @Router       /v2/coins [post]
// @Security     OAuth2Password
func (controller *CoinController) CreateCoin(c echo.Context) error {
	var body CreateCoinRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create coin request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create coin request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	coin, err := controller.svc.CreateCoin(c.Request().Context(), body.Holder, body.Value)
	if err != nil {
		c.Logger().Errorf("Failed to create coin: %v", err)
		return writeErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, &CreateCoinResponseBody{
		CoinID: coin.ID,
		Holder: coin.Holder,
		Value:  coin.Value,
	})
}
