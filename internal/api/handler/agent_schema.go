package handler

import (
	"github.com/ims-platform/inventory-system/internal/core/domain"
)

type createAgentRequest struct {
	Email          string `json:"email"          validate:"required,email"`
	Username       string `json:"username"`
	Password       string `json:"password"       validate:"required,min=6"`
	FullName       string `json:"fullName"       validate:"required"`
	ContactNumber  string `json:"contactNumber"  validate:"required,contact_number"`
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
}

type updateAgentRequest struct {
	Email          *string `json:"email"          validate:"omitempty,email"`
	FullName       *string `json:"fullName"`
	ContactNumber  *string `json:"contactNumber"  validate:"omitempty,contact_number"`
	CompanyName    *string `json:"companyName"`
	CompanyAddress *string `json:"companyAddress"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type agentResponse struct {
	AgentID        int64  `json:"agentId"`
	Email          string `json:"email"`
	FullName       string `json:"fullName"`
	ContactNumber  string `json:"contactNumber"`
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
	Status         string `json:"status"`
	CreatedDate    string `json:"createdDate"`
}

func toAgent(u *domain.User) agentResponse {
	return agentResponse{
		AgentID:        u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		ContactNumber:  u.ContactNumber,
		CompanyName:    u.CompanyName,
		CompanyAddress: u.CompanyAddr,
		Status:         u.Status,
		CreatedDate:    u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func toAgents(users []*domain.User) []agentResponse {
	out := make([]agentResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toAgent(u))
	}
	return out
}
