package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"stayhub/models"
)

func TestCreateReviewDuplicateConflict(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "listings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "people"}).AddRow(1, 4))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	// Đã có đánh giá của chính người này trên listing
	mock.ExpectQuery(`SELECT (.+) FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "listing_id"}).AddRow(9, 2, 1))

	router := newAuthedRouter(2, models.RoleUser)
	router.POST("/reviews", CreateReview)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(`{"listingId":1,"star":5,"comment":"Chỗ ở tốt"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReviewWithoutEligibleBooking(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "listings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "people"}).AddRow(1, 4))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	router := newAuthedRouter(2, models.RoleUser)
	router.POST("/reviews", CreateReview)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(`{"listingId":1,"star":4,"comment":"Chỗ ở tốt"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
