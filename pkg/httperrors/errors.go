package httperrors

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cashflow-insight/backend/pkg/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Upload errors
var (
	ErrNoFilePost      = errors.New("you must send a file to this endpoint")
	ErrWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
	ErrFileTooLarge    = errors.New("the uploaded file is too large")
	ErrInvalidSavings  = errors.New("current_savings must be a number")
)

// New writes a JSON error response with the message.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.JSON(status, HTTPError{
		Error: msg,
	})
}

// Parse returns the HTTP status and message appropriate for the error.
//
// Errors without a known mapping are logged and returned as
// http.StatusInternalServerError, the message then contains the request
// ID so that it can be found in the logs.
func Parse(c *gin.Context, err error) Error {
	var maxBytesErr *http.MaxBytesError

	switch {
	// Structural problems with the upload
	case errors.Is(err, models.ErrParse), errors.Is(err, models.ErrSchema):
		return Error{Status: http.StatusBadRequest, Err: err}

	case errors.Is(err, ErrNoFilePost), errors.Is(err, ErrWrongFileSuffix), errors.Is(err, ErrInvalidSavings):
		return Error{Status: http.StatusBadRequest, Err: err}

	// The multipart reader does not always wrap the error
	case errors.As(err, &maxBytesErr), strings.Contains(err.Error(), "request body too large"):
		return Error{Status: http.StatusRequestEntityTooLarge, Err: ErrFileTooLarge}

	// End of file reached when reading
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return Error{Status: http.StatusBadRequest, Err: errors.New("the request body must not be empty")}

	default:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return Error{
			Status: http.StatusInternalServerError,
			Err:    fmt.Errorf("%w. The request id is '%v', send this to your server administrator to help them finding the problem", models.ErrGeneral, requestid.Get(c)),
		}
	}
}

// Handler writes the error response for err.
func Handler(c *gin.Context, err error) {
	e := Parse(c, err)
	c.JSON(e.Status, e.Body())
}
