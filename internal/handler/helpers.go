package handler

import (
	"errors"
	"net/http"
	"strings"

	"barclube/internal/apierror"
	"barclube/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// bindForm binds a urlencoded form body and runs go-playground/validator
// tags. Returns false and writes the 422 response if anything fails — the
// caller should return immediately without writing another response.
func bindForm(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		respondError(c, apierror.ErrValidation)
		return false
	}
	if err := validate.Struct(req); err != nil {
		respondError(c, apierror.ErrValidation)
		return false
	}
	return true
}

// respondError renders a typed API error, or logs and returns a generic
// 500 for anything the taxonomy does not cover.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, apiErr)
		return
	}
	log.Error().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.FullPath()).
		Err(err).
		Msg("internal error")
	c.JSON(http.StatusInternalServerError, apierror.ErrInternal)
}

// parseFormBool accepts the loose truthy spellings HTML forms send.
func parseFormBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "on", "yes":
		return true
	default:
		return false
	}
}
