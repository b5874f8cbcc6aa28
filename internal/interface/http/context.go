package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
	"github.com/oksasatya/go-twitter-clone/internal/interface/middleware"
	"github.com/oksasatya/go-twitter-clone/pkg/response"
)

// currentUserID returns the authenticated caller set by the auth middleware.
func currentUserID(c *gin.Context) (valueobject.UserID, bool) {
	raw := c.GetString(middleware.ContextUserID)
	if raw == "" {
		return valueobject.UserID{}, false
	}
	uid, err := valueobject.UserIDFromString(raw)
	if err != nil {
		return valueobject.UserID{}, false
	}
	return uid, true
}

// optionalUserID returns a pointer for endpoints that annotate results for a
// logged-in caller but serve anonymous requests too.
func optionalUserID(c *gin.Context) *valueobject.UserID {
	if uid, ok := currentUserID(c); ok {
		return &uid
	}
	return nil
}

// statusOf maps the closed domain error set to HTTP status codes; the switch
// is exhaustive over apperrors.Kind.
func statusOf(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeDomainError(c *gin.Context, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	resp := response.Error[any](c, status, msg, nil)
	c.JSON(resp.Status, resp)
}

func writeBindError(c *gin.Context, details map[string]string) {
	resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", details)
	c.JSON(resp.Status, resp)
}

func writeSuccess[T any](c *gin.Context, status int, data T, message string, meta interface{}) {
	resp := response.Success(c, status, data, message, meta)
	c.JSON(resp.Status, resp)
}
