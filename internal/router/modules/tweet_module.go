package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-twitter-clone/internal/container"
	handlers "github.com/oksasatya/go-twitter-clone/internal/interface/http"
	"github.com/oksasatya/go-twitter-clone/internal/interface/middleware"
)

// TweetModule wires tweet routes.
// Public: GET /api/tweets/:id, GET /api/tweets/search
// Protected: POST/DELETE tweets, like/retweet actions
type TweetModule struct {
	Handler *handlers.TweetHandler
}

func NewTweetModule(h *handlers.TweetHandler) *TweetModule {
	return &TweetModule{Handler: h}
}

func (m *TweetModule) Register(rg *gin.RouterGroup) {
	rg.GET("/tweets/search", m.Handler.Search)
	rg.GET("/tweets/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetAuth()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/tweets", m.Handler.Post)
		auth.DELETE("/tweets/:id", m.Handler.Delete)
		auth.POST("/tweets/:id/like", m.Handler.Like)
		auth.DELETE("/tweets/:id/like", m.Handler.Unlike)
		auth.POST("/tweets/:id/retweet", m.Handler.Retweet)
		auth.DELETE("/tweets/:id/retweet", m.Handler.Unretweet)
	}
}
