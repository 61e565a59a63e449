package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookRequest struct {
	Title       string          `json:"title" binding:"required"`
	Author      string          `json:"author" binding:"required"`
	ISBN        string          `json:"isbn" binding:"required,len=13,numeric"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"499.00"`
	Quantity    *int            `json:"quantity" binding:"omitempty,min=0"`
	Description string          `json:"description"`
}

type UpdateBookRequest struct {
	Title       *string          `json:"title" binding:"omitempty,min=1"`
	Author      *string          `json:"author" binding:"omitempty,min=1"`
	ISBN        *string          `json:"isbn" binding:"omitempty,len=13,numeric"`
	Price       *decimal.Decimal `json:"price" swaggertype:"string" example:"499.00"`
	Quantity    *int             `json:"quantity" binding:"omitempty,min=0"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Summary     *string          `json:"summary" binding:"omitempty,max=4000"`
}

type Book struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	ISBN        string          `json:"isbn"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"499.00"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
	Summary     string          `json:"summary,omitempty"`
	CreatedBy   *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type BookResponse struct {
	Data Book `json:"data"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type ListBooksResponse struct {
	Data       []Book     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type AssignRequest struct {
	AssignedTo string          `json:"assigned_to" binding:"required"`
	Quantity   int             `json:"quantity"`
	SellPrice  decimal.Decimal `json:"sell_price" swaggertype:"string" example:"199.00"`
}

type Assignment struct {
	ID          uuid.UUID       `json:"id"`
	BookID      uuid.UUID       `json:"book_id"`
	AssignedTo  string          `json:"assigned_to"`
	Quantity    int             `json:"quantity"`
	SellPrice   decimal.Decimal `json:"sell_price" swaggertype:"string" example:"199.00"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string" example:"398.00"`
	AssignedBy  *uuid.UUID      `json:"assigned_by,omitempty"`
	AssignedAt  time.Time       `json:"assigned_at"`
}

type AssignResponse struct {
	Assignment        Assignment `json:"assignment"`
	RemainingQuantity int        `json:"remaining_quantity"`
}

type ListAssignmentsResponse struct {
	Data []Assignment `json:"data"`
}

type GenerateSummaryRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
