package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-twitter-clone/internal/application"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
	"github.com/oksasatya/go-twitter-clone/pkg/validation"
)

type FollowHandler struct {
	Follows *application.FollowService
	Users   *application.UserService
	Logger  *logrus.Logger
}

func NewFollowHandler(follows *application.FollowService, users *application.UserService, logger *logrus.Logger) *FollowHandler {
	return &FollowHandler{Follows: follows, Users: users, Logger: logger}
}

func userIDParam(c *gin.Context) (valueobject.UserID, bool) {
	uid, err := valueobject.UserIDFromString(c.Param("id"))
	if err != nil {
		writeBindError(c, map[string]string{"id": "must be a valid UUID"})
		return valueobject.UserID{}, false
	}
	return uid, true
}

// Follow POST /api/users/:id/follow (auth required)
func (h *FollowHandler) Follow(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		writeBindError(c, map[string]string{"token": "missing user identity"})
		return
	}
	target, ok := userIDParam(c)
	if !ok {
		return
	}
	if err := h.Follows.Follow(c.Request.Context(), uid, target); err != nil {
		writeDomainError(c, err)
		return
	}
	writeSuccess[any](c, http.StatusCreated, gin.H{"following": true}, "followed", nil)
}

// Unfollow DELETE /api/users/:id/follow (auth required)
func (h *FollowHandler) Unfollow(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		writeBindError(c, map[string]string{"token": "missing user identity"})
		return
	}
	target, ok := userIDParam(c)
	if !ok {
		return
	}
	if err := h.Follows.Unfollow(c.Request.Context(), uid, target); err != nil {
		writeDomainError(c, err)
		return
	}
	writeSuccess[any](c, http.StatusOK, gin.H{"following": false}, "unfollowed", nil)
}

// Followers GET /api/users/:id/followers (public; annotated when authenticated)
func (h *FollowHandler) Followers(c *gin.Context) {
	h.listRelations(c, h.Users.GetFollowers, "followers")
}

// Following GET /api/users/:id/following (public; annotated when authenticated)
func (h *FollowHandler) Following(c *gin.Context) {
	h.listRelations(c, h.Users.GetFollowing, "following")
}

type relationListFn func(ctx context.Context, userID valueobject.UserID, callerID *valueobject.UserID, page, size int) ([]application.RelatedUser, int, error)

func (h *FollowHandler) listRelations(c *gin.Context, list relationListFn, msg string) {
	target, ok := userIDParam(c)
	if !ok {
		return
	}
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, validation.ToDetails(err))
		return
	}
	items, total, err := list(c.Request.Context(), target, optionalUserID(c), q.Page, q.Size)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, toRelatedUserResponses(items), msg, gin.H{
		"page":  q.Page,
		"size":  q.Size,
		"total": total,
	})
}
