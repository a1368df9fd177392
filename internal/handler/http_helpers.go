package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stellarnotes/internal/service"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondEmpty writes status with no body, flushing the header immediately.
func respondEmpty(c *gin.Context, status int) {
	c.Status(status)
	c.Writer.WriteHeaderNow()
}

func respondFieldErrors(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, fields)
}

// respondServiceError maps service errors onto the wire: validation failures
// become 400 with per-field messages, missing rows 404 with an empty body.
func respondServiceError(c *gin.Context, err error, message string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respondFieldErrors(c, verr.Fields)
	case errors.Is(err, service.ErrGalleryNotFound), errors.Is(err, service.ErrAnnotationNotFound):
		respondEmpty(c, http.StatusNotFound)
	default:
		c.Error(err)
		respondError(c, http.StatusInternalServerError, message)
	}
}

func bindPayload(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondFieldErrors(c, decodeErrorFields(err))
		return false
	}
	return true
}

func decodeErrorFields(err error) map[string][]string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		message := fmt.Sprintf("Incorrect type. Expected %s, received %s.", typeErr.Type.String(), typeErr.Value)
		return map[string][]string{typeErr.Field: {message}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return map[string][]string{service.NonFieldErrorsKey: {fmt.Sprintf("JSON parse error - %s", syntaxErr.Error())}}
	}

	return map[string][]string{service.NonFieldErrorsKey: {"Invalid request body."}}
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// pathID reads the :id parameter; an id that is not an unsigned integer
// matches no record, so the request is answered with 404.
func pathID(c *gin.Context) (uint, bool) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondEmpty(c, http.StatusNotFound)
		return 0, false
	}
	return id, true
}
