package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/models"
)

func TestApplyHostAutoApproves(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role", "host_application_status"}).
			AddRow(1, models.RoleUser, models.HostApplicationNone))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := ApplyHost(db, 1, models.HostInfo{About: "x", Location: "Austin", Experience: "none"})
	require.NoError(t, err)

	assert.Equal(t, models.RoleHost, user.Role)
	assert.Equal(t, models.HostApplicationApproved, user.HostApplicationStatus)
	assert.NotNil(t, user.HostApplicationDate)
	assert.Equal(t, "Austin", user.HostInfo.Location)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyHostAlreadyHost(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role", "host_application_status"}).
			AddRow(1, models.RoleHost, models.HostApplicationApproved))

	_, err := ApplyHost(db, 1, models.HostInfo{})
	assert.ErrorIs(t, err, ErrAlreadyHost)

	// Không ghi gì thêm khi đã là chủ nhà
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyHostUserNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := ApplyHost(db, 99, models.HostInfo{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProcessHostApplicationInvalidDecision(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := ProcessHostApplication(db, 1, models.HostApplicationPending)
	assert.ErrorIs(t, err, ErrInvalidDecision)

	_, err = ProcessHostApplication(db, 1, 7)
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestProcessHostApplicationNoPending(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role", "host_application_status"}).
			AddRow(5, models.RoleUser, models.HostApplicationNone))

	_, err := ProcessHostApplication(db, 5, models.HostApplicationApproved)
	assert.ErrorIs(t, err, ErrNoPendingApplication)
}

func TestProcessHostApplicationApprove(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role", "host_application_status"}).
			AddRow(5, models.RoleUser, models.HostApplicationPending))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := ProcessHostApplication(db, 5, models.HostApplicationApproved)
	require.NoError(t, err)

	assert.Equal(t, models.RoleHost, user.Role)
	assert.Equal(t, models.HostApplicationApproved, user.HostApplicationStatus)
}

func TestProcessHostApplicationReject(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role", "host_application_status"}).
			AddRow(5, models.RoleUser, models.HostApplicationPending))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := ProcessHostApplication(db, 5, models.HostApplicationRejected)
	require.NoError(t, err)

	// Từ chối thì vai trò giữ nguyên
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, models.HostApplicationRejected, user.HostApplicationStatus)
}
