package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"

	"github.com/ims-platform/inventory-system/internal/core/domain"
	"github.com/ims-platform/inventory-system/internal/core/ports"
)

const mysqlErrDuplicateEntry = 1062

// UserRepository implements ports.UserRepository on MySQL.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	u.id, u.role_id, r.name, u.email, u.username,
	COALESCE(u.full_name, ''), COALESCE(u.contact_number, ''),
	COALESCE(u.company_name, ''), COALESCE(u.company_address, ''),
	u.password_hash, u.status, u.created_at, u.updated_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.RoleID, &u.RoleName, &u.Email, &u.Username,
		&u.FullName, &u.ContactNumber, &u.CompanyName, &u.CompanyAddr,
		&u.PasswordHash, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmail returns the ACTIVE identity with exactly this email.
// The match is case-sensitive by contract.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users u JOIN roles r ON u.role_id = r.id
		WHERE u.email = ? AND u.status = 'ACTIVE'`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users u JOIN roles r ON u.role_id = r.id
		WHERE u.id = ? AND u.status = 'ACTIVE'`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// FindAgentByID returns the agent with this id regardless of status, so
// deactivated agents remain manageable.
func (r *UserRepository) FindAgentByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users u JOIN roles r ON u.role_id = r.id
		WHERE u.id = ? AND u.role_id = ?`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id, domain.RoleIDAgent))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, fmt.Errorf("find agent by id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) ListAgents(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users u JOIN roles r ON u.role_id = r.id
		WHERE u.role_id = ?
		ORDER BY u.created_at DESC`

	return r.queryUsers(ctx, query, domain.RoleIDAgent)
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users u JOIN roles r ON u.role_id = r.id
		ORDER BY u.created_at DESC`

	return r.queryUsers(ctx, query)
}

func (r *UserRepository) queryUsers(ctx context.Context, query string, args ...any) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) CreateAgent(ctx context.Context, agent *domain.User) (int64, error) {
	query := `INSERT INTO users
		(role_id, email, username, full_name, contact_number, company_name, company_address, password_hash, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'ACTIVE')`

	res, err := r.db.ExecContext(ctx, query,
		domain.RoleIDAgent, agent.Email, agent.Username,
		nullable(agent.FullName), nullable(agent.ContactNumber),
		nullable(agent.CompanyName), nullable(agent.CompanyAddr),
		agent.PasswordHash,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, domain.ErrEmailExists
		}
		return 0, fmt.Errorf("insert agent: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert agent: last id: %w", err)
	}
	return id, nil
}

// UpdateAgent builds a dynamic SET clause from the non-nil fields.
func (r *UserRepository) UpdateAgent(ctx context.Context, id int64, in ports.UpdateAgentInput) error {
	var sets []string
	var args []any

	add := func(col string, val *string) {
		if val != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *val)
		}
	}
	add("email", in.Email)
	add("username", in.Username)
	add("full_name", in.FullName)
	add("contact_number", in.ContactNumber)
	add("company_name", in.CompanyName)
	add("company_address", in.CompanyAddr)
	add("status", in.Status)

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateEntry(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("update agent: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE users SET password_hash = ? WHERE id = ?", passwordHash, id); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE users SET status = ? WHERE id = ?", status, id); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email = ? AND id != ?", email, excludeID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("email exists: %w", err)
	}
	return n > 0, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func isDuplicateEntry(err error) bool {
	var me *mysqldriver.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry
}
