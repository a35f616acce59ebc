package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/lichub/lichub.go/controllers"
	"github.com/lichub/lichub.go/db"
	"github.com/lichub/lichub.go/db/migrations"
	"github.com/lichub/lichub.go/lib"
	"github.com/lichub/lichub.go/lib/logging"
	"github.com/lichub/lichub.go/lib/responses"
	"github.com/lichub/lichub.go/lib/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/uptrace/bun/migrate"
)

type AssetControllerTestSuite struct {
	suite.Suite
	svc  *service.LichubService
	echo *echo.Echo
}

func (suite *AssetControllerTestSuite) SetupSuite() {
	c := &service.Config{
		DatabaseUri: fmt.Sprintf("sqlite://file:ctrl%d?mode=memory&cache=shared", rand.Int63()),
	}
	dbConn, err := db.Open(c)
	if err != nil {
		suite.T().Fatalf("Error initializing db connection: %v", err)
	}
	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		suite.T().Fatalf("Error initializing db migrator: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		suite.T().Fatalf("Error migrating database: %v", err)
	}

	suite.svc = &service.LichubService{
		Config:      c,
		DB:          dbConn,
		Logger:      logging.Logger(""),
		EventPubSub: service.NewPubsub(),
	}

	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	suite.echo = e

	assetCtrl := controllers.NewAssetController(suite.svc)
	licenceCtrl := controllers.NewLicenceController(suite.svc)
	suite.echo.POST("/v2/assets", assetCtrl.MintAsset)
	suite.echo.GET("/v2/assets/:asset_id", assetCtrl.GetAsset)
	suite.echo.PUT("/v2/assets/:asset_id/listing", assetCtrl.UpdateListing)
	suite.echo.POST("/v2/assets/:asset_id/withdraw", assetCtrl.Withdraw)
	suite.echo.POST("/v2/assets/:asset_id/licences", licenceCtrl.MintLicence)
	suite.echo.POST("/v2/licences/:licence_id/transfer", licenceCtrl.TransferLicence)
	suite.echo.POST("/v2/coins", controllers.NewCoinController(suite.svc).CreateCoin)
}

func (suite *AssetControllerTestSuite) request(method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *AssetControllerTestSuite) mintAsset(listed bool) controllers.MintAssetResponseBody {
	rec := suite.request(http.MethodPost, "/v2/assets", &controllers.MintAssetRequestBody{
		Name:        "drum kit",
		ListPrice:   10,
		TotalSupply: 2,
		Listed:      listed,
		Recipient:   "creator-address",
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var minted controllers.MintAssetResponseBody
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&minted))
	assert.NotEmpty(suite.T(), minted.AssetID)
	assert.NotEmpty(suite.T(), minted.AdminCapabilityID)
	return minted
}

func (suite *AssetControllerTestSuite) createCoin(value int64) controllers.CreateCoinResponseBody {
	rec := suite.request(http.MethodPost, "/v2/coins", &controllers.CreateCoinRequestBody{
		Holder: "buyer-address",
		Value:  value,
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var coin controllers.CreateCoinResponseBody
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&coin))
	return coin
}

func (suite *AssetControllerTestSuite) TestMintAndGetAsset() {
	minted := suite.mintAsset(true)

	rec := suite.request(http.MethodGet, "/v2/assets/"+minted.AssetID, nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var asset map[string]interface{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&asset))
	assert.Equal(suite.T(), float64(2), asset["available_supply"])
	assert.Equal(suite.T(), float64(0), asset["accrued_balance"])
}

func (suite *AssetControllerTestSuite) TestMintAssetInvalidSupply() {
	rec := suite.request(http.MethodPost, "/v2/assets", &controllers.MintAssetRequestBody{
		Name:        "drum kit",
		ListPrice:   10,
		TotalSupply: -2,
		Recipient:   "creator-address",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	var errorResponse responses.ErrorResponse
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&errorResponse))
	assert.True(suite.T(), errorResponse.Error)
	assert.Equal(suite.T(), responses.InvalidSupplyError.Message, errorResponse.Message)
}

func (suite *AssetControllerTestSuite) TestMintAssetZeroSupply() {
	rec := suite.request(http.MethodPost, "/v2/assets", &controllers.MintAssetRequestBody{
		Name:        "drum kit",
		ListPrice:   10,
		TotalSupply: 0,
		Recipient:   "creator-address",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	// zero supply must surface the specific error, not generic bad arguments
	var errorResponse responses.ErrorResponse
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&errorResponse))
	assert.Equal(suite.T(), responses.InvalidSupplyError.Message, errorResponse.Message)
}

func (suite *AssetControllerTestSuite) TestMintAssetZeroPrice() {
	rec := suite.request(http.MethodPost, "/v2/assets", &controllers.MintAssetRequestBody{
		Name:        "drum kit",
		ListPrice:   0,
		TotalSupply: 2,
		Recipient:   "creator-address",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	var errorResponse responses.ErrorResponse
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&errorResponse))
	assert.Equal(suite.T(), responses.InvalidPriceError.Message, errorResponse.Message)
}

func (suite *AssetControllerTestSuite) TestMintAssetMissingFields() {
	rec := suite.request(http.MethodPost, "/v2/assets", &controllers.MintAssetRequestBody{
		Name: "drum kit",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *AssetControllerTestSuite) TestGetUnknownAsset() {
	rec := suite.request(http.MethodGet, "/v2/assets/does-not-exist", nil)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func (suite *AssetControllerTestSuite) TestUpdateListingNoOp() {
	minted := suite.mintAsset(true)

	listed := true
	rec := suite.request(http.MethodPut, "/v2/assets/"+minted.AssetID+"/listing", &controllers.UpdateListingRequestBody{
		AdminCapabilityID: minted.AdminCapabilityID,
		Listed:            &listed,
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	var errorResponse responses.ErrorResponse
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&errorResponse))
	assert.Equal(suite.T(), responses.ListingUnchangedError.Message, errorResponse.Message)
}

func (suite *AssetControllerTestSuite) TestUpdateListingForeignCapability() {
	minted := suite.mintAsset(true)
	other := suite.mintAsset(true)

	listed := false
	rec := suite.request(http.MethodPut, "/v2/assets/"+minted.AssetID+"/listing", &controllers.UpdateListingRequestBody{
		AdminCapabilityID: other.AdminCapabilityID,
		Listed:            &listed,
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *AssetControllerTestSuite) TestPurchaseFlow() {
	minted := suite.mintAsset(true)
	coin := suite.createCoin(25)

	rec := suite.request(http.MethodPost, "/v2/assets/"+minted.AssetID+"/licences", &controllers.MintLicenceRequestBody{
		CoinID:    coin.CoinID,
		Recipient: "buyer-address",
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var licence controllers.MintLicenceResponseBody
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&licence))
	assert.NotEmpty(suite.T(), licence.LicenceCapabilityID)

	// transfer it onwards
	rec = suite.request(http.MethodPost, "/v2/licences/"+licence.LicenceCapabilityID+"/transfer", &controllers.TransferLicenceRequestBody{
		AssetID:   minted.AssetID,
		Recipient: "collector-address",
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	// withdraw the proceeds
	rec = suite.request(http.MethodPost, "/v2/assets/"+minted.AssetID+"/withdraw", &controllers.WithdrawRequestBody{
		AdminCapabilityID: minted.AdminCapabilityID,
		Recipient:         "creator-address",
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var payout controllers.WithdrawResponseBody
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&payout))
	assert.Equal(suite.T(), int64(10), payout.Amount)
	assert.Equal(suite.T(), "creator-address", payout.Recipient)
}

func (suite *AssetControllerTestSuite) TestPurchaseInsufficientFunds() {
	minted := suite.mintAsset(true)
	coin := suite.createCoin(3)

	rec := suite.request(http.MethodPost, "/v2/assets/"+minted.AssetID+"/licences", &controllers.MintLicenceRequestBody{
		CoinID:    coin.CoinID,
		Recipient: "buyer-address",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	var errorResponse responses.ErrorResponse
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&errorResponse))
	assert.Equal(suite.T(), responses.InsufficientFundsError.Message, errorResponse.Message)
}

func TestAssetControllerSuite(t *testing.T) {
	suite.Run(t, new(AssetControllerTestSuite))
}
