package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookdesk/internal/model"
	"github.com/snnyvrz/bookdesk/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func parseIntQuery(c *gin.Context, key string, def int) int {
	if s := c.Query(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return def
}

func toBookData(b model.Book) Book {
	return Book{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price,
		Quantity:    b.Quantity,
		Description: b.Description,
		Summary:     b.Summary,
		CreatedBy:   b.CreatedByID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{Data: toBookData(b)}
}

func toAssignmentData(a model.Assignment) Assignment {
	return Assignment{
		ID:          a.ID,
		BookID:      a.BookID,
		AssignedTo:  a.AssignedTo,
		Quantity:    a.Quantity,
		SellPrice:   a.SellPrice,
		TotalAmount: a.TotalAmount,
		AssignedBy:  a.AssignedByID,
		AssignedAt:  a.AssignedAt,
	}
}

func toListBooksResponse(books []Book, page, pageSize int, total int64) ListBooksResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	return ListBooksResponse{
		Data: books,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
