package handler

import (
	"github.com/ims-platform/inventory-system/internal/core/domain"
	"github.com/ims-platform/inventory-system/internal/core/token"
)

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// loginUser is the identity view embedded in the login response. It carries
// no status or timestamps; those belong to the profile endpoints.
type loginUser struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
	RoleID   int    `json:"roleId"`
	RoleName string `json:"roleName"`
}

type loginResponse struct {
	User  loginUser `json:"user"`
	Token string    `json:"token"`
}

func toLoginUser(u *domain.User) loginUser {
	return loginUser{
		UserID:   u.ID,
		Email:    u.Email,
		Username: u.Username,
		RoleID:   u.RoleID,
		RoleName: u.RoleName,
	}
}

// profileResponse is the identity view returned by profile and user-list
// endpoints.
type profileResponse struct {
	UserID      int64  `json:"userId"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	RoleID      int    `json:"roleId"`
	RoleName    string `json:"roleName"`
	Status      string `json:"status"`
	CreatedDate string `json:"createdDate"`
}

func toProfile(u *domain.User) profileResponse {
	return profileResponse{
		UserID:      u.ID,
		Email:       u.Email,
		Username:    u.Username,
		RoleID:      u.RoleID,
		RoleName:    u.RoleName,
		Status:      u.Status,
		CreatedDate: u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func toProfiles(users []*domain.User) []profileResponse {
	out := make([]profileResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toProfile(u))
	}
	return out
}

type verifyTokenResponse struct {
	User      profileResponse `json:"user"`
	TokenData *token.Claims   `json:"tokenData"`
}
