package handlers

import (
	"time"

	"github.com/oksasatya/go-twitter-clone/internal/application"
	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
)

// Request/response shapes for the HTTP surface. Length limits here mirror the
// value objects so obviously bad input fails at the binding step; the domain
// validation is still authoritative.

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
}

type postTweetRequest struct {
	Content string `json:"content" binding:"required,max=280"`
}

type pageQuery struct {
	Page int `form:"page,default=0" binding:"gte=0"`
	Size int `form:"size,default=20" binding:"gte=1,lte=100"`
}

type userResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	DisplayName *string   `json:"display_name"`
	Bio         *string   `json:"bio"`
	AvatarURL   *string   `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUserResponse(u *entity.User, includeEmail bool) userResponse {
	out := userResponse{
		ID:          u.ID.String(),
		Username:    u.Username.String(),
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if includeEmail {
		out.Email = u.Email.String()
	}
	return out
}

type relatedUserResponse struct {
	userResponse
	FollowedByCaller bool `json:"followed_by_caller"`
}

func toRelatedUserResponses(items []application.RelatedUser) []relatedUserResponse {
	out := make([]relatedUserResponse, 0, len(items))
	for _, it := range items {
		out = append(out, relatedUserResponse{
			userResponse:     toUserResponse(it.User, false),
			FollowedByCaller: it.FollowedByCaller,
		})
	}
	return out
}

type tweetResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toTweetResponse(t *entity.Tweet) tweetResponse {
	return tweetResponse{
		ID:        t.ID.String(),
		UserID:    t.UserID.String(),
		Content:   t.Content.String(),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type feedItemResponse struct {
	tweetResponse
	LikedByCurrentUser     bool `json:"liked_by_current_user"`
	RetweetedByCurrentUser bool `json:"retweeted_by_current_user"`
}

func toFeedItemResponses(items []application.FeedItem) []feedItemResponse {
	out := make([]feedItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, feedItemResponse{
			tweetResponse:          toTweetResponse(it.Tweet),
			LikedByCurrentUser:     it.LikedByCurrentUser,
			RetweetedByCurrentUser: it.RetweetedByCurrentUser,
		})
	}
	return out
}
