package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-twitter-clone/internal/container"
	handlers "github.com/oksasatya/go-twitter-clone/internal/interface/http"
	"github.com/oksasatya/go-twitter-clone/internal/interface/middleware"
)

// UserModule wires account routes.
// Public: POST /api/register, POST /api/login, GET /api/users/:id
// Protected: GET/PUT /api/profile, POST /api/profile/avatar
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.GET("/users/:id", m.Handler.GetUser)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetAuth()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PUT("/profile", m.Handler.UpdateProfile)
		auth.POST("/profile/avatar", m.Handler.UploadAvatar)
	}
}
