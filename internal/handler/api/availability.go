package api

import (
	"errors"
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Search hotels
// @Description Hotels in a city with a room free for every night of the stay
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param city query string true "City"
// @Param checkIn query string true "Check-in date (yyyy-MM-dd)"
// @Param nights query int true "Number of nights"
// @Success 200 {array} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Router /availability/hotels [get]
func (h *AvailabilityHandler) SearchHotels(c *gin.Context) {
	var req reqdto.SearchHotelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}
	checkIn, err := req.CheckInDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check-in date",
		})
		return
	}

	views, err := h.availabilityQueries.SearchHotels(c.Request.Context(), req.City, checkIn, req.Nights)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelViews(views))
}

// @Summary Search flights
// @Description Flights on a city pair with a seat left on the date
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param from query string true "Departure city"
// @Param to query string true "Arrival city"
// @Param date query string true "Departure date (yyyy-MM-dd)"
// @Success 200 {array} resdto.FlightResponse
// @Failure 400 {object} map[string]string
// @Router /availability/flights [get]
func (h *AvailabilityHandler) SearchFlights(c *gin.Context) {
	var req reqdto.SearchFlightsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}
	date, err := req.DepartureDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid departure date",
		})
		return
	}

	views, err := h.availabilityQueries.SearchFlights(c.Request.Context(), req.From, req.To, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlightViews(views))
}

// @Summary Search taxis
// @Description Taxis in a city free for the whole ride starting at pickup
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param city query string true "City"
// @Param pickup query string true "Pickup instant (yyyy-MM-dd HH:mm)"
// @Param distanceKm query number true "Ride distance in km"
// @Success 200 {array} resdto.TaxiResponse
// @Failure 400 {object} map[string]string
// @Router /availability/taxis [get]
func (h *AvailabilityHandler) SearchTaxis(c *gin.Context) {
	var req reqdto.SearchTaxisRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}
	pickup, err := req.PickupTime()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pickup time",
		})
		return
	}

	views, err := h.availabilityQueries.SearchTaxis(c.Request.Context(), req.City, pickup, req.DistanceKm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromTaxiViews(views))
}

// @Summary Product availability
// @Description Free units of one product at one time key
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param timeKey query string true "Time key"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability/products/{id} [get]
func (h *AvailabilityHandler) ProductAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	units, err := h.availabilityQueries.ProductAvailability(c.Request.Context(), id, req.TimeKey)
	if err != nil {
		if errors.Is(err, errs.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		ProductID: id,
		TimeKey:   req.TimeKey,
		Units:     units,
	})
}
