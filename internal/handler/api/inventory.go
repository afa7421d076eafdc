package api

import (
	"errors"
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
	}
}

// @Summary Add hotel
// @Description Register a hotel with per-night room capacity
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /inventory/hotels [post]
func (h *InventoryHandler) AddHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.inventoryCommands.AddHotel(c.Request.Context(), req)
	if err != nil {
		h.renderInventoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromHotelView(view))
}

// @Summary Add flight
// @Description Register a direct or connecting flight with per-date seat capacity
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFlightRequest true "Flight"
// @Success 201 {object} resdto.FlightResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /inventory/flights [post]
func (h *InventoryHandler) AddFlight(c *gin.Context) {
	var req reqdto.CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.inventoryCommands.AddFlight(c.Request.Context(), req)
	if err != nil {
		h.renderInventoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFlightView(view))
}

// @Summary Add taxi
// @Description Register a taxi fleet with per-time-slice car capacity
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTaxiRequest true "Taxi"
// @Success 201 {object} resdto.TaxiResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /inventory/taxis [post]
func (h *InventoryHandler) AddTaxi(c *gin.Context) {
	var req reqdto.CreateTaxiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.inventoryCommands.AddTaxi(c.Request.Context(), req)
	if err != nil {
		h.renderInventoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTaxiView(view))
}

func (h *InventoryHandler) renderInventoryError(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrInvalidInventory) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid inventory data",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
