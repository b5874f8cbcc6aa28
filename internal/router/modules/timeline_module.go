package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-twitter-clone/internal/container"
	handlers "github.com/oksasatya/go-twitter-clone/internal/interface/http"
	"github.com/oksasatya/go-twitter-clone/internal/interface/middleware"
)

// TimelineModule wires the home timeline route.
type TimelineModule struct {
	Handler *handlers.TimelineHandler
}

func NewTimelineModule(h *handlers.TimelineHandler) *TimelineModule {
	return &TimelineModule{Handler: h}
}

func (m *TimelineModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetAuth()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 240, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/timeline", m.Handler.Get)
	}
}
