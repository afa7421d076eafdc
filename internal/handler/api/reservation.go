package api

import (
	"errors"
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Reserve a package, consuming hotel, flight and taxi capacity
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reservationCommands.CreateReservation(c.Request.Context(), req, customerID, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPackageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Package not found",
			})
		case errors.Is(err, errs.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Referenced product not found",
			})
		case errors.Is(err, errs.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, errs.ErrCapacityExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No capacity left for the requested dates",
			})
		case errors.Is(err, errs.ErrDuplicateRequest):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Duplicate request with different parameters",
			})
		case errors.Is(err, errs.ErrIdempotencyInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request is currently being processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromReservationView(result.Reservation))
}

// @Summary Cancel reservation
// @Description Cancel a reservation; the refund depends on how close departure is
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.CancellationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.reservationCommands.CancelReservation(c.Request.Context(), id, customerID, middleware.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, queries.ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not your reservation",
			})
		case errors.Is(err, errs.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is already cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancellationResult(result))
}

// @Summary Get reservation
// @Description Get reservation by ID; customers only see their own
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), customerID, middleware.IsAdmin(c), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, queries.ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not your reservation",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description List the caller's reservations; admins get the full ledger
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var views []*queries.ReservationView
	var err error
	if middleware.IsAdmin(c) {
		views, err = h.reservationQueries.ListAll(c.Request.Context())
	} else {
		views, err = h.reservationQueries.ListByCustomer(c.Request.Context(), customerID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}
	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errs.New("invalid idempotency key format")
	}
	return key, nil
}
