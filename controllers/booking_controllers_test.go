package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/models"
)

func TestConvertDateToISOFormat(t *testing.T) {
	parsed, err := ConvertDateToISOFormat("15/02/2026")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, 15, parsed.Day())

	_, err = ConvertDateToISOFormat("2026-02-15")
	assert.Error(t, err)

	_, err = ConvertDateToISOFormat("")
	assert.Error(t, err)
}

func TestGetBookingDetailForbiddenForOtherUser(t *testing.T) {
	mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "listing_id"}).AddRow(1, 1, 3))
	mock.ExpectQuery(`SELECT (.+) FROM "listings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	// Người dùng 2 không phải chủ booking và không phải admin
	router := newAuthedRouter(2, models.RoleUser)
	router.GET("/bookings/:id", GetBookingDetail)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCancelBookingForbiddenForOtherUser(t *testing.T) {
	mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "listing_id", "status"}).
			AddRow(1, 1, 3, models.BookingStatusConfirmed))
	mock.ExpectQuery(`SELECT (.+) FROM "listings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_cancelable"}).AddRow(3, true))

	router := newAuthedRouter(2, models.RoleUser)
	router.PUT("/bookingCancel", CancelBooking)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/bookingCancel", strings.NewReader(`{"id":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestChangeBookingStatusRequiresStatus(t *testing.T) {
	newMockDB(t)

	router := newAuthedRouter(9, models.RoleAdmin)
	router.PUT("/bookingStatus", ChangeBookingStatus)

	// Thiếu status thì không được ngầm hiểu là 0 (chờ xử lý)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/bookingStatus", strings.NewReader(`{"id":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
