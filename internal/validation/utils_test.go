package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/grampanchayat/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValidate = validator.New()

type officialInput struct {
	Name   string `json:"name" validate:"required,max=5"`
	Mobile string `json:"mobile" validate:"required"`
}

type officialsPayload struct {
	Officials []officialInput `json:"officials" validate:"required,min=1,dive"`
	Role      string          `json:"role" validate:"omitempty,oneof=admin editor"`
}

func (p *officialsPayload) Validate() error {
	return testValidate.Struct(p)
}

type renamePayload struct {
	Name string `json:"name"`
}

func (p *renamePayload) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return CustomValidationErrors{{Field: "name", Message: "must not be blank"}}
	}
	return nil
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		p := &officialsPayload{}
		err := BindAndValidate(newContext(`{"officials":[{"name":"Asha","mobile":"98"}]}`), p)
		require.NoError(t, err)
		assert.Equal(t, "Asha", p.Officials[0].Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"officials":`), &officialsPayload{})
		httpErr := asHTTPError(t, err)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.NotEmpty(t, httpErr.Message)
		assert.Empty(t, httpErr.Errors)
	})

	t.Run("field errors", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"officials":[{"name":"Sarpanch"}],"role":"owner"}`), &officialsPayload{})
		httpErr := asHTTPError(t, err)
		assert.Equal(t, "Validation failed", httpErr.Message)
		assert.True(t, httpErr.Override)

		got := map[string]string{}
		for _, fe := range httpErr.Errors {
			got[fe.Field] = fe.Error
		}
		assert.Equal(t, map[string]string{
			"officials[0].name":   "must not exceed 5 characters",
			"officials[0].mobile": "is required",
			"role":                "must be one of: admin editor",
		}, got)
	})

	t.Run("empty list", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"officials":[]}`), &officialsPayload{})
		httpErr := asHTTPError(t, err)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "officials", httpErr.Errors[0].Field)
		assert.Equal(t, "must contain at least 1 item(s)", httpErr.Errors[0].Error)
	})

	t.Run("custom errors", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"name":"  "}`), &renamePayload{})
		httpErr := asHTTPError(t, err)
		assert.Equal(t, []errs.FieldError{{Field: "name", Error: "must not be blank"}}, httpErr.Errors)
	})
}

type plainErrPayload struct{}

func (plainErrPayload) Validate() error { return errors.New("order must be positive") }

func TestExtractValidationErrorPlain(t *testing.T) {
	msg, fields := extractValidationError(plainErrPayload{}.Validate())
	assert.Equal(t, "order must be positive", msg)
	assert.Nil(t, fields)
}
