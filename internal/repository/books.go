package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookdesk/internal/model"
	"gorm.io/gorm"
)

type BookListParams struct {
	Page     int
	PageSize int
	Sort     string
	// Query is matched as a case-insensitive substring against
	// title, author and isbn.
	Query string
}

type BookListResult struct {
	Books []model.Book
	Total int64
}

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	List(ctx context.Context, params BookListParams) (*BookListResult, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		First(&book, "id = ?", id).Error; err != nil {

		return nil, err
	}
	return &book, nil
}

var bookSortColumns = map[string]string{
	"created_at_desc": "created_at DESC",
	"created_at_asc":  "created_at ASC",
	"title_asc":       "title ASC",
	"title_desc":      "title DESC",
}

func (r *GormBookRepository) List(ctx context.Context, params BookListParams) (*BookListResult, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{})

	if s := strings.TrimSpace(params.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR isbn LIKE ?",
			like, like, "%"+s+"%",
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	order, ok := bookSortColumns[params.Sort]
	if !ok {
		order = bookSortColumns["created_at_desc"]
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var books []model.Book
	if err := q.Order(order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&books).Error; err != nil {

		return nil, err
	}

	return &BookListResult{Books: books, Total: total}, nil
}

func (r *GormBookRepository) Update(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"title":       book.Title,
			"author":      book.Author,
			"isbn":        book.ISBN,
			"price":       book.Price,
			"quantity":    book.Quantity,
			"description": book.Description,
			"summary":     book.Summary,
		}).Error
}

func (r *GormBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// sqlite in tests does not enforce the cascade constraint, so
		// assignments are removed explicitly inside the same transaction.
		if err := tx.Delete(&model.Assignment{}, "book_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Book{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return err
}
