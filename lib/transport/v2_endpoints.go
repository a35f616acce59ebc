package transport

import (
	"github.com/labstack/echo/v4"
	"github.com/lichub/lichub.go/controllers"
	"github.com/lichub/lichub.go/lib/service"
)

func RegisterV2Endpoints(svc *service.LichubService, e *echo.Echo, strictRateLimitMiddleware echo.MiddlewareFunc, adminMw echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	assetCtrl := controllers.NewAssetController(svc)
	licenceCtrl := controllers.NewLicenceController(svc)
	eventCtrl := controllers.NewEventController(svc)

	e.POST("/v2/assets", assetCtrl.MintAsset, strictRateLimitMiddleware, logMw)
	e.GET("/v2/assets/:asset_id", assetCtrl.GetAsset, logMw)
	e.PUT("/v2/assets/:asset_id/listing", assetCtrl.UpdateListing, logMw)
	e.POST("/v2/assets/:asset_id/withdraw", assetCtrl.Withdraw, strictRateLimitMiddleware, logMw)
	e.POST("/v2/assets/:asset_id/licences", licenceCtrl.MintLicence, strictRateLimitMiddleware, logMw)
	e.POST("/v2/licences/:licence_id/transfer", licenceCtrl.TransferLicence, logMw)
	e.GET("/v2/events", eventCtrl.ListEvents, logMw)

	// faucet for the wallet collaborator, admin token required
	e.POST("/v2/coins", controllers.NewCoinController(svc).CreateCoin, adminMw, logMw)
}
