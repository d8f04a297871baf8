package controllers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stayhub/config"
)

// newMockDB gắn một sqlmock vào config.DB cho thời gian chạy test.
func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	previous := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = previous })

	return mock
}

// newAuthedRouter giả lập người dùng đã qua middleware xác thực.
func newAuthedRouter(userID uint, role int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("currentUserID", userID)
		c.Set("currentUserRole", role)
	})
	return router
}
