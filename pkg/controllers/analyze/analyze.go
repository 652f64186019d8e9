package analyze

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/cashflow-insight/backend/pkg/analysis"
	"github.com/cashflow-insight/backend/pkg/httperrors"
	"github.com/cashflow-insight/backend/pkg/httputil"
	"github.com/cashflow-insight/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Suffixes are the file name suffixes accepted for uploads, compared case-insensitively.
var Suffixes = []string{".csv"}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.POST("", Create)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analyze
// @Success		204
// @Router			/analyze [options]
func Options(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Analyze statement
// @Description	Analyzes a CSV bank statement and returns burn rate, category breakdown, safety buffer and a 12 month balance projection.
// @Description	The file needs a description column (named "description" or "details") and an amount column (named "amount" or "price").
// @Description	If no column matches, the second and third columns are used.
// @Tags			Analyze
// @Accept			multipart/form-data
// @Produce		json
// @Param			file			formData	file	true	"File to analyze"
// @Param			current_savings	formData	number	false	"Current savings, defaults to 0. Can also be sent as query parameter, the form field wins."
// @Success		200				{object}	analysis.Report
// @Failure		400				{object}	httperrors.HTTPError
// @Failure		413				{object}	httperrors.HTTPError
// @Failure		500				{object}	httperrors.HTTPError
// @Router			/analyze [post]
func Create(c *gin.Context) {
	f, e := getUploadedFile(c, Suffixes...)
	if !e.Nil() {
		observe(e.Err)
		c.JSON(e.Status, e.Body())
		return
	}
	defer f.Close()

	savings, err := currentSavings(c)
	if err != nil {
		observe(err)
		httperrors.Handler(c, err)
		return
	}

	result, err := analysis.Analyze(f, savings)
	observe(err)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, result.Report())
}

// getUploadedFile returns the uploaded file from the "file" form field
// if its name ends in one of the suffixes.
func getUploadedFile(c *gin.Context, suffixes ...string) (multipart.File, httperrors.Error) {
	formFile, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) || (err == nil && formFile == nil) {
		return nil, httperrors.Error{
			Status: http.StatusBadRequest,
			Err:    httperrors.ErrNoFilePost,
		}
	}

	if err != nil {
		return nil, httperrors.Parse(c, err)
	}

	if !slices.Contains(suffixes, strings.ToLower(filepath.Ext(formFile.Filename))) {
		return nil, httperrors.Error{
			Status: http.StatusBadRequest,
			Err:    fmt.Errorf("%w: %s", httperrors.ErrWrongFileSuffix, strings.Join(suffixes, ", ")),
		}
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, httperrors.Parse(c, err)
	}

	return f, httperrors.Error{}
}

// currentSavings reads the current_savings form field, falling back to the
// query parameter of the same name. Missing or empty values are zero.
func currentSavings(c *gin.Context) (decimal.Decimal, error) {
	value, ok := c.GetPostForm("current_savings")
	if !ok || strings.TrimSpace(value) == "" {
		value = c.Query("current_savings")
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}

	savings, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w, got '%s'", httperrors.ErrInvalidSavings, value)
	}

	return savings, nil
}

// outcome returns the value of the outcome label for the result of a request.
func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, models.ErrParse):
		return OutcomeParseError
	case errors.Is(err, models.ErrSchema):
		return OutcomeSchemaError
	case errors.Is(err, httperrors.ErrNoFilePost),
		errors.Is(err, httperrors.ErrWrongFileSuffix),
		errors.Is(err, httperrors.ErrFileTooLarge),
		errors.Is(err, httperrors.ErrInvalidSavings):
		return OutcomeUploadError
	default:
		return OutcomeError
	}
}
