package apperrors

import (
	"github.com/gin-gonic/gin"
)

// errorBody is the wire format for every failed request.
type errorBody struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// GinErrorHandler maps errors onto HTTP responses.
type GinErrorHandler struct {
	// Debug keeps internal error messages in responses. Must be false in
	// production builds so persistence details never reach the client.
	Debug bool
}

var defaultHandler = &GinErrorHandler{Debug: false}

// SetDebug switches the package-level handler, called once at startup.
func SetDebug(debug bool) {
	defaultHandler = &GinErrorHandler{Debug: debug}
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	body := errorBody{Message: appErr.Message, Details: appErr.Details}
	if appErr.HTTPCode >= 500 && !h.Debug {
		body.Message = "Server error"
		body.Details = nil
	}

	c.JSON(appErr.HTTPCode, body)
}

// HandleError writes err through the package-level handler.
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
