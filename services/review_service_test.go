package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name  string
		stars []int
		want  float64
	}{
		{"không có đánh giá", nil, 0},
		{"một đánh giá", []int{5}, 5.0},
		{"trung bình chẵn", []int{4, 2}, 3.0},
		{"làm tròn lên", []int{5, 4, 4}, 4.3},
		{"làm tròn xuống", []int{3, 3, 4}, 3.3},
		{"nửa điểm", []int{4, 5}, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageRating(tt.stars))
		})
	}
}

func TestCanReview(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	assert.True(t, CanReview(db, 1, 2))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	assert.False(t, CanReview(db, 1, 3))
}

func TestUpdateListingRating(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"star"}).AddRow(5).AddRow(4).AddRow(4))
	mock.ExpectExec(`UPDATE "listings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, UpdateListingRating(db, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
