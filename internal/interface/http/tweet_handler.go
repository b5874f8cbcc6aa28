package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-twitter-clone/internal/application"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
	"github.com/oksasatya/go-twitter-clone/pkg/validation"
)

type TweetHandler struct {
	Svc    *application.TweetService
	Logger *logrus.Logger
}

func NewTweetHandler(svc *application.TweetService, logger *logrus.Logger) *TweetHandler {
	return &TweetHandler{Svc: svc, Logger: logger}
}

func tweetIDParam(c *gin.Context) (valueobject.TweetID, bool) {
	tid, err := valueobject.TweetIDFromString(c.Param("id"))
	if err != nil {
		writeBindError(c, map[string]string{"id": "must be a valid UUID"})
		return valueobject.TweetID{}, false
	}
	return tid, true
}

// Post POST /api/tweets (auth required)
func (h *TweetHandler) Post(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		writeBindError(c, map[string]string{"token": "missing user identity"})
		return
	}
	var req postTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, validation.ToDetails(err))
		return
	}
	t, err := h.Svc.PostTweet(c.Request.Context(), uid, req.Content)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated, toTweetResponse(t), "tweet posted", nil)
}

// Get GET /api/tweets/:id (public)
func (h *TweetHandler) Get(c *gin.Context) {
	tid, ok := tweetIDParam(c)
	if !ok {
		return
	}
	t, err := h.Svc.GetTweet(c.Request.Context(), tid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, toTweetResponse(t), "tweet", nil)
}

// Delete DELETE /api/tweets/:id (auth required, author only)
func (h *TweetHandler) Delete(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		writeBindError(c, map[string]string{"token": "missing user identity"})
		return
	}
	tid, ok := tweetIDParam(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteTweet(c.Request.Context(), tid, uid); err != nil {
		writeDomainError(c, err)
		return
	}
	writeSuccess[any](c, http.StatusOK, gin.H{"deleted": true}, "tweet deleted", nil)
}

// Like POST /api/tweets/:id/like (auth required)
func (h *TweetHandler) Like(c *gin.Context) {
	h.relationAction(c, h.Svc.Like, "tweet liked")
}

// Unlike DELETE /api/tweets/:id/like (auth required, idempotent)
func (h *TweetHandler) Unlike(c *gin.Context) {
	h.relationAction(c, h.Svc.Unlike, "tweet unliked")
}

// Retweet POST /api/tweets/:id/retweet (auth required)
func (h *TweetHandler) Retweet(c *gin.Context) {
	h.relationAction(c, h.Svc.Retweet, "tweet retweeted")
}

// Unretweet DELETE /api/tweets/:id/retweet (auth required, idempotent)
func (h *TweetHandler) Unretweet(c *gin.Context) {
	h.relationAction(c, h.Svc.Unretweet, "tweet unretweeted")
}

type tweetRelationFn func(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) error

func (h *TweetHandler) relationAction(c *gin.Context, action tweetRelationFn, msg string) {
	uid, ok := currentUserID(c)
	if !ok {
		writeBindError(c, map[string]string{"token": "missing user identity"})
		return
	}
	tid, ok := tweetIDParam(c)
	if !ok {
		return
	}
	if err := action(c.Request.Context(), uid, tid); err != nil {
		writeDomainError(c, err)
		return
	}
	writeSuccess[any](c, http.StatusOK, gin.H{"ok": true}, msg, nil)
}

// Search GET /api/tweets/search?q=...&size=... (public)
func (h *TweetHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		writeBindError(c, map[string]string{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchTweets(c.Request.Context(), q, size)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}
