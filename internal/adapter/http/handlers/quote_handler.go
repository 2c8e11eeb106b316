package handlers

import (
	"net/http"

	"comcraft/internal/adapter/http/dto/request"
	"comcraft/internal/adapter/http/dto/response"
	"comcraft/internal/usecase"
	"comcraft/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler exposes the pricing catalog and quote computation.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ComputeQuote prices the requested selections. Selections that resolve to
// nothing yield a zero-value quote, not an error.
func (h *QuoteHandler) ComputeQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote := h.usecase.ComputeQuote(payload.ToSelections(), payload.ToOptions())
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListServices returns the service catalog, tier pricing included.
func (h *QuoteHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServices(h.usecase.ListServices()))
}
