package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ims-platform/inventory-system/internal/core/domain"
	"github.com/ims-platform/inventory-system/internal/core/ports"
	"github.com/ims-platform/inventory-system/internal/pkg/password"
)

// AgentService implements administrative agent-account management.
// Accounts are only ever soft-deactivated; no operation removes a row.
type AgentService struct {
	repo       ports.UserRepository
	bcryptCost int
	log        zerolog.Logger
}

func NewAgentService(repo ports.UserRepository, bcryptCost int, log zerolog.Logger) *AgentService {
	if bcryptCost <= 0 {
		bcryptCost = password.DefaultCost
	}
	return &AgentService{repo: repo, bcryptCost: bcryptCost, log: log}
}

// Create provisions a new ACTIVE agent account. The role is fixed to AGENT.
func (s *AgentService) Create(ctx context.Context, in ports.CreateAgentInput) (*domain.User, error) {
	exists, err := s.repo.EmailExists(ctx, in.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	hash, err := password.Hash(in.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("create agent: hash password: %w", err)
	}

	agent := &domain.User{
		RoleID:        domain.RoleIDAgent,
		RoleName:      domain.RoleAgent,
		Email:         in.Email,
		Username:      in.Username,
		FullName:      in.FullName,
		ContactNumber: in.ContactNumber,
		CompanyName:   in.CompanyName,
		CompanyAddr:   in.CompanyAddr,
		PasswordHash:  hash,
		Status:        domain.StatusActive,
	}

	id, err := s.repo.CreateAgent(ctx, agent)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}
	agent.ID = id

	s.log.Info().Int64("agent_id", id).Str("email", in.Email).Msg("agent created")
	return agent, nil
}

func (s *AgentService) List(ctx context.Context) ([]*domain.User, error) {
	agents, err := s.repo.ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

func (s *AgentService) Get(ctx context.Context, id int64) (*domain.User, error) {
	agent, err := s.repo.FindAgentByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, fmt.Errorf("get agent: %w", err)
	}
	return agent, nil
}

// Update applies a partial update. When the email changes, uniqueness is
// re-checked against every other account.
func (s *AgentService) Update(ctx context.Context, id int64, in ports.UpdateAgentInput) error {
	if _, err := s.repo.FindAgentByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			return domain.ErrAgentNotFound
		}
		return fmt.Errorf("update agent: %w", err)
	}

	if in.Email != nil {
		exists, err := s.repo.EmailExists(ctx, *in.Email, id)
		if err != nil {
			return fmt.Errorf("update agent: %w", err)
		}
		if exists {
			return domain.ErrEmailExists
		}
	}

	if err := s.repo.UpdateAgent(ctx, id, in); err != nil {
		return fmt.Errorf("update agent: %w", err)
	}

	s.log.Info().Int64("agent_id", id).Msg("agent updated")
	return nil
}

func (s *AgentService) UpdatePassword(ctx context.Context, id int64, newPassword string) error {
	if _, err := s.repo.FindAgentByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			return domain.ErrAgentNotFound
		}
		return fmt.Errorf("update agent password: %w", err)
	}

	hash, err := password.Hash(newPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("update agent password: hash: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		return fmt.Errorf("update agent password: %w", err)
	}

	s.log.Info().Int64("agent_id", id).Msg("agent password updated")
	return nil
}

// Deactivate soft-deletes an agent. A deactivated agent can no longer
// authenticate, even with correct credentials.
func (s *AgentService) Deactivate(ctx context.Context, id int64) error {
	agent, err := s.repo.FindAgentByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			return domain.ErrAgentNotFound
		}
		return fmt.Errorf("deactivate agent: %w", err)
	}
	if agent.Status == domain.StatusInactive {
		return domain.ErrAgentInactive
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.StatusInactive); err != nil {
		return fmt.Errorf("deactivate agent: %w", err)
	}

	s.log.Info().Int64("agent_id", id).Msg("agent deactivated")
	return nil
}

func (s *AgentService) Activate(ctx context.Context, id int64) error {
	agent, err := s.repo.FindAgentByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			return domain.ErrAgentNotFound
		}
		return fmt.Errorf("activate agent: %w", err)
	}
	if agent.Status == domain.StatusActive {
		return domain.ErrAgentActive
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.StatusActive); err != nil {
		return fmt.Errorf("activate agent: %w", err)
	}

	s.log.Info().Int64("agent_id", id).Msg("agent activated")
	return nil
}
