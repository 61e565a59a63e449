package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/snnyvrz/bookdesk/internal/model"
	"github.com/snnyvrz/bookdesk/internal/validation"
)

func TestAssignBook(t *testing.T) {
	db := setupTestDB(t)
	r, jm := setupRouter(db, nil)
	user, token := seedTestUser(t, db, jm)

	book := seedTestBook(t, db, "Dune", "Frank Herbert", "9780441172719", 10)

	body := `{"assigned_to": "Rahul", "quantity": 2, "sell_price": "199.00"}`
	w := doRequest(t, r, http.MethodPost, "/api/books/"+book.ID.String()+"/assign", body, token)
	assertStatus(t, w, http.StatusOK)

	var resp AssignResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.RemainingQuantity != 8 {
		t.Fatalf("expected remaining_quantity 8, got %d", resp.RemainingQuantity)
	}
	if resp.Assignment.AssignedTo != "Rahul" {
		t.Fatalf("expected assigned_to Rahul, got %q", resp.Assignment.AssignedTo)
	}
	if resp.Assignment.TotalAmount.StringFixed(2) != "398.00" {
		t.Fatalf("expected total_amount 398.00, got %s", resp.Assignment.TotalAmount)
	}
	if resp.Assignment.AssignedBy == nil || *resp.Assignment.AssignedBy != user.ID {
		t.Fatalf("expected assigned_by %s, got %v", user.ID, resp.Assignment.AssignedBy)
	}

	var stored model.Book
	if err := db.First(&stored, "id = ?", book.ID).Error; err != nil {
		t.Fatalf("failed to reload book: %v", err)
	}
	if stored.Quantity != 8 {
		t.Fatalf("expected stored quantity 8, got %d", stored.Quantity)
	}
}

func TestAssignBook_InsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	r, jm := setupRouter(db, nil)
	_, token := seedTestUser(t, db, jm)

	book := seedTestBook(t, db, "Dune", "Frank Herbert", "9780441172719", 2)

	body := `{"assigned_to": "Rahul", "quantity": 3, "sell_price": "199.00"}`
	w := doRequest(t, r, http.MethodPost, "/api/books/"+book.ID.String()+"/assign", body, token)
	assertStatus(t, w, http.StatusBadRequest)

	var resp validation.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != "INSUFFICIENT_STOCK" {
		t.Fatalf("expected code INSUFFICIENT_STOCK, got %q", resp.Code)
	}
	if resp.Message != "Only 2 books available in stock" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}

	var stored model.Book
	if err := db.First(&stored, "id = ?", book.ID).Error; err != nil {
		t.Fatalf("failed to reload book: %v", err)
	}
	if stored.Quantity != 2 {
		t.Fatalf("quantity must be untouched on failure, got %d", stored.Quantity)
	}
}

func TestAssignBook_ValidationErrors(t *testing.T) {
	db := setupTestDB(t)
	r, jm := setupRouter(db, nil)
	_, token := seedTestUser(t, db, jm)

	book := seedTestBook(t, db, "Dune", "Frank Herbert", "9780441172719", 10)

	tests := []struct {
		name string
		body string
	}{
		{"missing recipient", `{"quantity": 1, "sell_price": "199.00"}`},
		{"whitespace recipient", `{"assigned_to": "   ", "quantity": 1, "sell_price": "199.00"}`},
		{"zero quantity", `{"assigned_to": "Rahul", "quantity": 0, "sell_price": "199.00"}`},
		{"negative quantity", `{"assigned_to": "Rahul", "quantity": -1, "sell_price": "199.00"}`},
		{"negative sell price", `{"assigned_to": "Rahul", "quantity": 1, "sell_price": "-5.00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/api/books/"+book.ID.String()+"/assign", tt.body, token)
			assertStatus(t, w, http.StatusBadRequest)
		})
	}

	var n int64
	if err := db.Model(&model.Assignment{}).Count(&n).Error; err != nil {
		t.Fatalf("failed to count assignments: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no assignments recorded, got %d", n)
	}
}

func TestAssignBook_RequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	r, _ := setupRouter(db, nil)

	book := seedTestBook(t, db, "Dune", "Frank Herbert", "9780441172719", 10)

	body := `{"assigned_to": "Rahul", "quantity": 1, "sell_price": "199.00"}`
	w := doRequest(t, r, http.MethodPost, "/api/books/"+book.ID.String()+"/assign", body, "")
	assertStatus(t, w, http.StatusUnauthorized)
}

func TestAssignBook_NotFound(t *testing.T) {
	db := setupTestDB(t)
	r, jm := setupRouter(db, nil)
	_, token := seedTestUser(t, db, jm)

	body := `{"assigned_to": "Rahul", "quantity": 1, "sell_price": "199.00"}`
	w := doRequest(t, r, http.MethodPost, "/api/books/00000000-0000-0000-0000-000000000001/assign", body, token)
	assertStatus(t, w, http.StatusNotFound)
}

func TestListAssignments_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	r, jm := setupRouter(db, nil)
	_, token := seedTestUser(t, db, jm)

	book := seedTestBook(t, db, "Dune", "Frank Herbert", "9780441172719", 10)

	first := `{"assigned_to": "Rahul", "quantity": 2, "sell_price": "199.00"}`
	second := `{"assigned_to": "Priya", "quantity": 1, "sell_price": "249.00"}`
	assertStatus(t, doRequest(t, r, http.MethodPost, "/api/books/"+book.ID.String()+"/assign", first, token), http.StatusOK)
	assertStatus(t, doRequest(t, r, http.MethodPost, "/api/books/"+book.ID.String()+"/assign", second, token), http.StatusOK)

	w := doRequest(t, r, http.MethodGet, "/api/books/"+book.ID.String()+"/assignments", "", token)
	assertStatus(t, w, http.StatusOK)

	var resp ListAssignmentsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(resp.Data))
	}
	if resp.Data[0].AssignedTo != "Priya" || resp.Data[1].AssignedTo != "Rahul" {
		t.Fatalf("expected newest first [Priya, Rahul], got [%s, %s]",
			resp.Data[0].AssignedTo, resp.Data[1].AssignedTo)
	}
}

func TestListAssignments_BookNotFound(t *testing.T) {
	db := setupTestDB(t)
	r, jm := setupRouter(db, nil)
	_, token := seedTestUser(t, db, jm)

	w := doRequest(t, r, http.MethodGet, "/api/books/00000000-0000-0000-0000-000000000001/assignments", "", token)
	assertStatus(t, w, http.StatusNotFound)
}
