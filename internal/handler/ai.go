package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookdesk/internal/ai"
	"github.com/snnyvrz/bookdesk/internal/validation"
)

// TextGenerator is the slice of the AI gateway the handlers depend on.
type TextGenerator interface {
	Summarize(ctx context.Context, title, author string) (string, error)
	Chat(ctx context.Context, title, author, message string) (string, error)
}

// GenerateSummary godoc
// @Summary      Generate a book summary
// @Description  Ask the configured AI provider for a short summary of a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      GenerateSummaryRequest  true  "Book title and author"
// @Success      200      {object}  SummaryResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      429      {object}  validation.ErrorResponse   "Provider rate limited"
// @Failure      503      {object}  validation.ErrorResponse   "AI service unavailable"
// @Security     BearerAuth
// @Router       /books/generate_summary [post]
func (h *BookHandler) GenerateSummary(c *gin.Context) {
	var req GenerateSummaryRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if h.gw == nil {
		writeAINotConfigured(c)
		return
	}

	summary, err := h.gw.Summarize(c.Request.Context(), req.Title, req.Author)
	if err != nil {
		writeAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Summary: summary})
}

// Chat godoc
// @Summary      Chat about a book
// @Description  Send a free-form message about a book to the configured AI provider
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string       true  "Book ID (UUID)"
// @Param        payload  body      ChatRequest  true  "User message"
// @Success      200      {object}  ChatResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      429      {object}  validation.ErrorResponse   "Provider rate limited"
// @Failure      503      {object}  validation.ErrorResponse   "AI service unavailable"
// @Security     BearerAuth
// @Router       /books/{id}/chat [post]
func (h *BookHandler) Chat(c *gin.Context) {
	bookID, ok := h.bookIDParam(c)
	if !ok {
		return
	}

	var req ChatRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(c, http.StatusBadRequest,
			"MESSAGE_REQUIRED",
			"message is required",
		)
		return
	}

	book, ok := h.fetchBook(c, bookID)
	if !ok {
		return
	}

	if h.gw == nil {
		writeAINotConfigured(c)
		return
	}

	reply, err := h.gw.Chat(c.Request.Context(), book.Title, book.Author, message)
	if err != nil {
		writeAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

func writeAINotConfigured(c *gin.Context) {
	writeError(c, http.StatusServiceUnavailable,
		"AI_NOT_CONFIGURED",
		"AI service is not configured",
	)
}

func writeAIError(c *gin.Context, err error) {
	var provErr *ai.ProviderError
	switch {
	case ai.IsConfig(err):
		writeAINotConfigured(c)
	case errors.As(err, &provErr) && provErr.Kind == ai.KindRateLimited:
		writeError(c, http.StatusTooManyRequests,
			"AI_RATE_LIMITED",
			"AI provider rate limit exceeded, try again later",
		)
	default:
		writeError(c, http.StatusServiceUnavailable,
			"AI_UNAVAILABLE",
			"AI service unavailable",
		)
	}
}
