package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/snnyvrz/bookdesk/internal/auth"
	"github.com/snnyvrz/bookdesk/internal/ledger"
	"github.com/snnyvrz/bookdesk/internal/middleware"
	"github.com/snnyvrz/bookdesk/internal/model"
	"github.com/snnyvrz/bookdesk/internal/repository"
	"golang.org/x/time/rate"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Book{}, &model.Assignment{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// stubGateway implements TextGenerator for handler tests.
type stubGateway struct {
	summary string
	reply   string
	err     error

	gotTitle   string
	gotAuthor  string
	gotMessage string
}

func (s *stubGateway) Summarize(ctx context.Context, title, author string) (string, error) {
	s.gotTitle, s.gotAuthor = title, author
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

func (s *stubGateway) Chat(ctx context.Context, title, author, message string) (string, error) {
	s.gotTitle, s.gotAuthor, s.gotMessage = title, author, message
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func setupRouter(db *gorm.DB, gw TextGenerator) (*gin.Engine, *auth.JWTManager) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	api := r.Group("/api")

	authHandler := NewAuthHandler(
		auth.NewPasswordAuthenticator(repository.NewGormUserRepository(db)),
		jwtManager,
	)
	authHandler.RegisterRoutes(api)

	bookHandler := NewBookHandler(repository.NewGormBookRepository(db), ledger.New(db), gw)
	bookHandler.RegisterRoutes(api,
		middleware.RequireAuth(jwtManager),
		middleware.RateLimit(middleware.NewIPRateLimiter(rate.Inf, 1)),
	)

	return r, jwtManager
}

func seedTestBook(t *testing.T, db *gorm.DB, title, author, isbn string, quantity int) model.Book {
	t.Helper()

	book := model.Book{
		Title:    title,
		Author:   author,
		ISBN:     isbn,
		Price:    decimal.RequireFromString("499.00"),
		Quantity: quantity,
	}

	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}

func seedTestUser(t *testing.T, db *gorm.DB, jwtManager *auth.JWTManager) (model.User, string) {
	t.Helper()

	user := model.User{
		Email:        uuid.New().String() + "@example.com",
		DisplayName:  "Tester",
		PasswordHash: "not-a-real-hash",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	token, err := jwtManager.Generate(&user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return user, token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()

	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
