package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/admissions-crm-api/pkg/errors"
)

// Envelope wraps payloads for endpoints that use the success/data contract.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorBody is written for every failed request.
type ErrorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

// JSON writes body as-is. Resource endpoints return bare objects and arrays.
func JSON(c *gin.Context, status int, body interface{}) {
	noStore(c)
	c.JSON(status, body)
}

// Data writes the {success, data} envelope.
func Data(c *gin.Context, status int, data interface{}) {
	JSON(c, status, Envelope{Success: true, Data: data})
}

// Created responds with HTTP 201 and the bare body.
func Created(c *gin.Context, body interface{}) {
	JSON(c, http.StatusCreated, body)
}

// Error converts err to the common error body. Server-side failures never leak their cause;
// the full error is attached to the context for the request logger.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	_ = c.Error(err)

	message := appErr.Message
	if appErr.Status >= http.StatusInternalServerError {
		message = appErrors.ErrInternal.Message
	}

	noStore(c)
	c.JSON(appErr.Status, ErrorBody{Code: appErr.Code, Message: message})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}
