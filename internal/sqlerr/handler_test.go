package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/grampanchayat/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "users_email_key",
	}

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert user: %w", pgErr)))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleErrorCheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514", TableName: "hero_images", ColumnName: "order"}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "HERO_IMAGE_INVALID", httpErr.Code)
	assert.Equal(t, "The Order value does not meet required conditions", httpErr.Message)
}

func TestHandleErrorNotNull(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", TableName: "representatives", ColumnName: "mobile"}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, "REPRESENTATIVE_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "mobile", httpErr.Errors[0].Field)
}

func TestHandleErrorNoRows(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{"hero_images", "Hero Image not found"},
		{"historical_places", "Historical Place not found"},
		{"infrastructure", "Infrastructure not found"},
		{"users", "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			httpErr := asHTTPError(t, HandleError(NoRows(tt.table)))
			assert.Equal(t, http.StatusNotFound, httpErr.Status)
			assert.Equal(t, tt.want, httpErr.Message)
		})
	}
}

func TestHandleErrorPassThrough(t *testing.T) {
	original := errs.NewForbiddenError("Insufficient permissions", true)
	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)

	httpErr = asHTTPError(t, HandleError(&pgconn.PgError{Code: "53300"}))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23505"})))
	assert.Equal(t, CheckViolation, ErrCode(ConvertPgError(&pgconn.PgError{Code: "23514"})))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("users_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
