package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-twitter-clone/internal/container"
	handlers "github.com/oksasatya/go-twitter-clone/internal/interface/http"
	"github.com/oksasatya/go-twitter-clone/internal/interface/middleware"
)

// FollowModule wires the social graph routes. Follower and following
// listings are public but pick up the caller's identity when a token
// is present so the payload can flag already-followed users.
type FollowModule struct {
	Handler *handlers.FollowHandler
}

func NewFollowModule(h *handlers.FollowHandler) *FollowModule {
	return &FollowModule{Handler: h}
}

func (m *FollowModule) Register(rg *gin.RouterGroup) {
	public := rg.Group("/")
	public.Use(middleware.OptionalAuth(container.GetAuth()))
	{
		public.GET("/users/:id/followers", m.Handler.Followers)
		public.GET("/users/:id/following", m.Handler.Following)
	}

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetAuth()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/users/:id/follow", m.Handler.Follow)
		auth.DELETE("/users/:id/follow", m.Handler.Unfollow)
	}
}
