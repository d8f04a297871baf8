package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/models"
)

func TestUpdateListingPartialKeepsType(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "listings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type", "price", "people"}).
			AddRow(1, 2, "Căn hộ quận 1", 2, 150, 4))
	mock.ExpectExec(`UPDATE "listings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	router := newAuthedRouter(2, models.RoleHost)
	router.PUT("/listingUpdate", UpdateListing)

	// Chỉ gửi giá: loại listing phải giữ nguyên
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/listingUpdate", strings.NewReader(`{"id":1,"price":200}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data ListingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Type)
	assert.Equal(t, 200, resp.Data.Price)
}

func TestUpdateListingForbiddenForNonOwner(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "listings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(1, 2))

	router := newAuthedRouter(5, models.RoleHost)
	router.PUT("/listingUpdate", UpdateListing)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/listingUpdate", strings.NewReader(`{"id":1,"price":200}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
