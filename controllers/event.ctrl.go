package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/lichub/lichub.go/db/models"
	"github.com/lichub/lichub.go/lib/responses"
	"github.com/lichub/lichub.go/lib/service"
)

// EventController : Ledger event controller struct
type EventController struct {
	svc *service.LichubService
}

func NewEventController(svc *service.LichubService) *EventController {
	return &EventController{svc: svc}
}

type ListEventsResponseBody struct {
	Events []models.LedgerEvent `json:"events"`
}

// ListEvents godoc
// @Summary      Retrieve ledger events
// @Description  Returns the append-only event stream after the given id; the indexer's catch-up path
// @Produce      json
// @Tags         Event
// @Param        since  query     int  false  "Return events with an id greater than this"
// @Success      200    {object}  ListEventsResponseBody
// @Failure      400    {object}  responses.ErrorResponse
// @Router       /v2/events [get]
func (controller *EventController) ListEvents(c echo.Context) error {
	sinceId := int64(0)
	if since := c.QueryParam("since"); since != "" {
		parsed, err := strconv.ParseInt(since, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		sinceId = parsed
	}

	events, err := controller.svc.LedgerEventsSince(c.Request().Context(), sinceId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &ListEventsResponseBody{Events: events})
}
