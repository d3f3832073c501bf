package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/deppfellow/grampanchayat/internal/errs"
	"github.com/deppfellow/grampanchayat/internal/middleware"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application dependencies.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Response is the body of every successful API response.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// --- Generic typed handler plumbing -----------------------------------------

// Payload is a request type bound per request: a pointer to T that validates itself.
type Payload[T any] interface {
	*T
	validation.Validatable
}

// HandlerFunc is a typed endpoint that receives a validated payload and returns data.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// HandlerFuncNoContent is a typed endpoint whose response carries only a message.
type HandlerFuncNoContent[Req validation.Validatable] func(c echo.Context, req Req) error

// ResponseHandler writes a successful handler result and describes it for observability.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result any)
}

// JSONResponseHandler wraps the result as Response.Data.
type JSONResponseHandler struct {
	status  int
	message string
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, Response{Success: true, Message: h.message, Data: result})
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	// http.status_code is already set by tracing middleware (EnhanceTracing).
}

// MessageResponseHandler answers with a message and no data.
type MessageResponseHandler struct {
	status  int
	message string
}

func (h MessageResponseHandler) Handle(c echo.Context, _ any) error {
	return c.JSON(h.status, Response{Success: true, Message: h.message})
}

func (h MessageResponseHandler) GetOperation() string {
	return "handler_message"
}

func (h MessageResponseHandler) AddAttributes(txn *newrelic.Transaction, _ any) {
	if txn != nil && h.message != "" {
		txn.AddAttribute("response.message", h.message)
	}
}

// handleRequest is the shared execution pipeline for all handlers:
// binding and validation, structured logging, New Relic attributes,
// timing and response writing.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("path", c.Request().URL.Path).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)
	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with validation, error handling, logging and tracing.
// A fresh payload is allocated for every request.
//
//	g.POST("/login", Handle(h.Handler, h.Login, http.StatusOK))
func Handle[T any, Req Payload[T], Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
) echo.HandlerFunc {
	return HandleWithMessage[T, Req, Res](h, handler, status, "")
}

// HandleWithMessage is Handle with a fixed success message next to the data.
func HandleWithMessage[T any, Req Payload[T], Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	message string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, Req(new(T)), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status, message: message})
	}
}

// HandleNoContent wraps a handler that only reports success, e.g. deletes.
func HandleNoContent[T any, Req Payload[T]](
	h Handler,
	handler HandlerFuncNoContent[Req],
	status int,
	message string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, Req(new(T)), func(c echo.Context, req Req) (any, error) {
			return nil, handler(c, req)
		}, MessageResponseHandler{status: status, message: message})
	}
}

// formFile returns the uploaded file in field, or nil when the field is absent.
func formFile(c echo.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, errs.NewBadRequestError("Invalid multipart form", false, nil, nil, nil)
	}
	return fh, nil
}
