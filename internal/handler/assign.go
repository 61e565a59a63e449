package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookdesk/internal/ledger"
	"github.com/snnyvrz/bookdesk/internal/middleware"
	"github.com/snnyvrz/bookdesk/internal/validation"
	"gorm.io/gorm"
)

// AssignBook godoc
// @Summary      Assign book stock to a recipient
// @Description  Atomically decrement stock and record an immutable assignment
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string         true  "Book ID (UUID)"
// @Param        payload  body      AssignRequest  true  "Assignment details"
// @Success      200      {object}  AssignResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error or insufficient stock"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Security     BearerAuth
// @Router       /books/{id}/assign [post]
func (h *BookHandler) AssignBook(c *gin.Context) {
	bookID, ok := h.bookIDParam(c)
	if !ok {
		return
	}

	var req AssignRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	res, err := h.ledger.Assign(c.Request.Context(), bookID, ledger.AssignInput{
		Recipient: req.AssignedTo,
		Quantity:  req.Quantity,
		SellPrice: req.SellPrice,
		ActorID:   middleware.ActorID(c),
	})
	if err != nil {
		var stockErr *ledger.InsufficientStockError
		switch {
		case ledger.IsValidation(err):
			writeError(c, http.StatusBadRequest,
				"ASSIGN_VALIDATION_FAILED",
				err.Error(),
			)
		case errors.As(err, &stockErr):
			writeError(c, http.StatusBadRequest,
				"INSUFFICIENT_STOCK",
				fmt.Sprintf("Only %d books available in stock", stockErr.Available),
			)
		case errors.Is(err, gorm.ErrRecordNotFound):
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
		default:
			writeError(c, http.StatusInternalServerError,
				"ASSIGN_FAILED",
				"failed to assign book",
			)
		}
		return
	}

	c.JSON(http.StatusOK, AssignResponse{
		Assignment:        toAssignmentData(res.Assignment),
		RemainingQuantity: res.RemainingQuantity,
	})
}

// ListAssignments godoc
// @Summary      List assignments for a book
// @Description  Get the assignment audit trail of a book, newest first
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  ListAssignmentsResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Security     BearerAuth
// @Router       /books/{id}/assignments [get]
func (h *BookHandler) ListAssignments(c *gin.Context) {
	bookID, ok := h.bookIDParam(c)
	if !ok {
		return
	}

	if _, ok := h.fetchBook(c, bookID); !ok {
		return
	}

	assignments, err := h.ledger.History(c.Request.Context(), bookID)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"ASSIGNMENT_LIST_FAILED",
			"failed to fetch assignments",
		)
		return
	}

	data := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		data = append(data, toAssignmentData(a))
	}

	c.JSON(http.StatusOK, ListAssignmentsResponse{Data: data})
}
