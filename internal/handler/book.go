package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/snnyvrz/bookdesk/internal/ledger"
	"github.com/snnyvrz/bookdesk/internal/middleware"
	"github.com/snnyvrz/bookdesk/internal/model"
	"github.com/snnyvrz/bookdesk/internal/repository"
	"github.com/snnyvrz/bookdesk/internal/validation"
	"gorm.io/gorm"
)

type BookHandler struct {
	repo   repository.BookRepository
	ledger *ledger.Ledger
	gw     TextGenerator
}

func NewBookHandler(repo repository.BookRepository, l *ledger.Ledger, gw TextGenerator) *BookHandler {
	return &BookHandler{repo: repo, ledger: l, gw: gw}
}

// RegisterRoutes wires the book routes. Read routes are public; write,
// assign and AI routes require authentication, and AI routes are rate
// limited on top of that.
func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup, requireAuth, aiLimit gin.HandlerFunc) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.POST("", requireAuth, h.CreateBook)
		books.PATCH("/:id", requireAuth, h.UpdateBook)
		books.DELETE("/:id", requireAuth, h.DeleteBook)
		books.POST("/:id/assign", requireAuth, h.AssignBook)
		books.GET("/:id/assignments", requireAuth, h.ListAssignments)
		books.POST("/generate_summary", requireAuth, aiLimit, h.GenerateSummary)
		books.POST("/:id/chat", requireAuth, aiLimit, h.Chat)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book with title, author, ISBN, price and stock quantity
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      409      {object}  validation.ErrorResponse   "ISBN already exists"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Security     BearerAuth
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.Price.IsNegative() {
		writeError(c, http.StatusBadRequest,
			"INVALID_PRICE",
			"price must be non-negative",
		)
		return
	}

	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	book := model.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Price:       req.Price,
		Quantity:    quantity,
		Description: req.Description,
		CreatedByID: middleware.ActorID(c),
	}

	ctx := c.Request.Context()

	if err := h.repo.Create(ctx, &book); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			writeError(c, http.StatusConflict,
				"ISBN_ALREADY_EXISTS",
				"a book with this ISBN already exists",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_CREATE_FAILED",
			"failed to create book",
		)
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(book))
}

// ListBooks godoc
// @Summary      List books
// @Description  Get books with pagination, sorting and substring search
// @Tags         books
// @Produce      json
// @Param        page       query     int     false  "Page number"      default(1) minimum(1)
// @Param        page_size  query     int     false  "Items per page"   default(20) minimum(1) maximum(100)
// @Param        sort       query     string  false  "Sort field and direction" Enums(created_at_desc,created_at_asc,title_asc,title_desc)
// @Param        q          query     string  false  "Substring search on title, author and ISBN"
// @Success      200  {object}  ListBooksResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	ctx := c.Request.Context()

	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "page_size", 20)
	if pageSize > 100 {
		pageSize = 100
	}

	params := repository.BookListParams{
		Page:     page,
		PageSize: pageSize,
		Sort:     c.DefaultQuery("sort", "created_at_desc"),
		Query:    c.Query("q"),
	}

	result, err := h.repo.List(ctx, params)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	books := make([]Book, 0, len(result.Books))
	for _, b := range result.Books {
		books = append(books, toBookData(b))
	}

	c.JSON(http.StatusOK, toListBooksResponse(books, page, pageSize, result.Total))
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Description  Get a single book by its UUID
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	bookID, ok := h.bookIDParam(c)
	if !ok {
		return
	}

	book, ok := h.fetchBook(c, bookID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Partially update a book by its UUID
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Book ID (UUID)"
// @Param        payload  body      UpdateBookRequest   true  "Fields to update"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Security     BearerAuth
// @Router       /books/{id} [patch]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	bookID, ok := h.bookIDParam(c)
	if !ok {
		return
	}

	book, ok := h.fetchBook(c, bookID)
	if !ok {
		return
	}

	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.Title == nil && req.Author == nil && req.ISBN == nil &&
		req.Price == nil && req.Quantity == nil &&
		req.Description == nil && req.Summary == nil {

		writeError(c, http.StatusBadRequest,
			"NO_FIELDS_TO_UPDATE",
			"at least one field must be provided to update",
		)
		return
	}

	if req.Price != nil && req.Price.IsNegative() {
		writeError(c, http.StatusBadRequest,
			"INVALID_PRICE",
			"price must be non-negative",
		)
		return
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.ISBN != nil {
		book.ISBN = *req.ISBN
	}
	if req.Price != nil {
		book.Price = *req.Price
	}
	if req.Quantity != nil {
		book.Quantity = *req.Quantity
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.Summary != nil {
		book.Summary = *req.Summary
	}

	ctx := c.Request.Context()

	if err := h.repo.Update(ctx, book); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			writeError(c, http.StatusConflict,
				"ISBN_ALREADY_EXISTS",
				"a book with this ISBN already exists",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_UPDATE_FAILED",
			"failed to update book",
		)
		return
	}

	updated, err := h.repo.FindByID(ctx, book.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_FETCH_FAILED",
			"failed to fetch updated book",
		)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*updated))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book and its assignment history by its UUID
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      204  {string}  string  "No content"
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Security     BearerAuth
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, ok := h.bookIDParam(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_DELETE_FAILED",
			"failed to delete book",
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookHandler) bookIDParam(c *gin.Context) (uuid.UUID, bool) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"invalid book id",
		)
		return uuid.Nil, false
	}
	return bookID, true
}

func (h *BookHandler) fetchBook(c *gin.Context, bookID uuid.UUID) (*model.Book, bool) {
	book, err := h.repo.FindByID(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return nil, false
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_FETCH_FAILED",
			"failed to fetch book",
		)
		return nil, false
	}
	return book, true
}
