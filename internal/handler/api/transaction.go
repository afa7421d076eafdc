package api

import (
	"net/http"

	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	transactionQueries queries.TransactionQueries
}

func NewTransactionHandler(transactionQueries queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{
		transactionQueries: transactionQueries,
	}
}

// @Summary List transactions
// @Description Full purchase and refund trail, oldest first
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	views, err := h.transactionQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionViews(views))
}
