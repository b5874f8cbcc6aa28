package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-twitter-clone/internal/application"
	"github.com/oksasatya/go-twitter-clone/pkg/validation"
)

type TimelineHandler struct {
	Svc    *application.TimelineQueryService
	Logger *logrus.Logger
}

func NewTimelineHandler(svc *application.TimelineQueryService, logger *logrus.Logger) *TimelineHandler {
	return &TimelineHandler{Svc: svc, Logger: logger}
}

// Get GET /api/timeline?page=0&size=20 (auth required)
func (h *TimelineHandler) Get(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		writeBindError(c, map[string]string{"token": "missing user identity"})
		return
	}
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, validation.ToDetails(err))
		return
	}

	items, err := h.Svc.GetTimeline(c.Request.Context(), uid, q.Page, q.Size)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	totalPages, err := h.Svc.CountPages(c.Request.Context(), uid, q.Size)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, toFeedItemResponses(items), "timeline", gin.H{
		"page":        q.Page,
		"size":        q.Size,
		"total_pages": totalPages,
	})
}
