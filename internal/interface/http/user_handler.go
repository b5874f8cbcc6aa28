package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-twitter-clone/internal/application"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
	"github.com/oksasatya/go-twitter-clone/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Register POST /api/register
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated, toUserResponse(u, true), "account created", nil)
}

// Login POST /api/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, gin.H{
		"user":       toUserResponse(res.User, true),
		"token":      res.Token,
		"expires_at": res.ExpiresAt,
	}, "login successful", nil)
}

// GetProfile GET /api/profile (auth required)
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		writeBindError(c, map[string]string{"token": "missing user identity"})
		return
	}
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, toUserResponse(u, true), "profile", nil)
}

// GetUser GET /api/users/:id (public)
func (h *UserHandler) GetUser(c *gin.Context) {
	uid, err := valueobject.UserIDFromString(c.Param("id"))
	if err != nil {
		writeBindError(c, map[string]string{"id": "must be a valid UUID"})
		return
	}
	u, svcErr := h.Svc.GetProfile(c.Request.Context(), uid)
	if svcErr != nil {
		writeDomainError(c, svcErr)
		return
	}
	writeSuccess(c, http.StatusOK, toUserResponse(u, false), "user", nil)
}

// UpdateProfile PUT /api/profile (auth required). The three fields are
// replaced as a unit: omit a field and it is cleared.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		writeBindError(c, map[string]string{"token": "missing user identity"})
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, toUserResponse(u, true), "profile updated", nil)
}

// UploadAvatar POST /api/profile/avatar (auth required, multipart)
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		writeBindError(c, map[string]string{"token": "missing user identity"})
		return
	}
	fh, err := c.FormFile("avatar")
	if err != nil {
		writeBindError(c, map[string]string{"avatar": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeBindError(c, map[string]string{"avatar": "file could not be read"})
		return
	}
	defer func() { _ = f.Close() }()

	url, svcErr := h.Svc.UploadAvatar(c.Request.Context(), uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if svcErr != nil {
		writeDomainError(c, svcErr)
		return
	}
	writeSuccess(c, http.StatusOK, gin.H{"avatar_url": url}, "avatar uploaded", nil)
}
