// Package directory is the durable team member store backing the dashboard
// login layer. Team members live in MySQL; managers come from a static
// allow-list and are never stored here.
package directory

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hades874/10MS-Req-Dash/internal/models"
)

var (
	ErrNotFound           = errors.New("team member not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateMemberInput is the caller-supplied part of a new directory entry.
type CreateMemberInput struct {
	Email    string
	Password string
	Name     string
	Team     string
}

// UpdateMemberInput is a shallow patch; empty fields are left untouched and
// the password is only replaced when non-empty.
type UpdateMemberInput struct {
	Email    string
	Password string
	Name     string
	Team     string
}

// List returns all active team members, newest first.
func (s *Store) List() ([]models.TeamMember, error) {
	rows, err := s.db.Query(`
        SELECT id, email, password, name, team, role, is_active, created_at
        FROM team_members
        WHERE is_active = TRUE
        ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.Email, &m.Password, &m.Name, &m.Team, &m.Role, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *Store) Get(id string) (*models.TeamMember, error) {
	var m models.TeamMember
	err := s.db.QueryRow(`
        SELECT id, email, password, name, team, role, is_active, created_at
        FROM team_members
        WHERE id = ?`, id).Scan(
		&m.ID, &m.Email, &m.Password, &m.Name, &m.Team, &m.Role, &m.IsActive, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &m, nil
}

// Authenticate checks an email/password pair against the active members.
func (s *Store) Authenticate(email, password string) (*models.TeamMember, error) {
	var m models.TeamMember
	err := s.db.QueryRow(`
        SELECT id, email, password, name, team, role, is_active, created_at
        FROM team_members
        WHERE email = ? AND is_active = TRUE`, strings.TrimSpace(email)).Scan(
		&m.ID, &m.Email, &m.Password, &m.Name, &m.Team, &m.Role, &m.IsActive, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &m, nil
}

func (s *Store) Create(input CreateMemberInput) (*models.TeamMember, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM team_members WHERE email = ?)", input.Email).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	member := models.TeamMember{
		ID:        newMemberID(),
		Email:     input.Email,
		Password:  hashed,
		Name:      input.Name,
		Team:      input.Team,
		Role:      models.RoleTeamMember,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	_, err = s.db.Exec(`
        INSERT INTO team_members (id, email, password, name, team, role, is_active, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		member.ID, member.Email, member.Password, member.Name, member.Team,
		member.Role, member.IsActive, member.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &member, nil
}

func (s *Store) Update(id string, patch UpdateMemberInput) error {
	member, err := s.Get(id)
	if err != nil {
		return err
	}

	if patch.Email != "" {
		member.Email = patch.Email
	}
	if patch.Name != "" {
		member.Name = patch.Name
	}
	if patch.Team != "" {
		member.Team = patch.Team
	}
	if patch.Password != "" {
		hashed, err := hashPassword(patch.Password)
		if err != nil {
			return err
		}
		member.Password = hashed
	}

	_, err = s.db.Exec(`
        UPDATE team_members
        SET email = ?, password = ?, name = ?, team = ?
        WHERE id = ?`,
		member.Email, member.Password, member.Name, member.Team, id)
	return err
}

func (s *Store) Delete(id string) error {
	result, err := s.db.Exec("DELETE FROM team_members WHERE id = ?", id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Seed imports the TEAM_MEMBERS_DATA blob when the table is empty. Plaintext
// passwords in the blob are hashed on import; already-hashed values are kept
// verbatim so the blob can round-trip.
func (s *Store) Seed(blob string) error {
	if blob == "" {
		return nil
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM team_members").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds, err := ParseSeed(blob)
	if err != nil {
		return err
	}

	for _, m := range seeds {
		_, err := s.db.Exec(`
            INSERT INTO team_members (id, email, password, name, team, role, is_active, created_at)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.Email, m.Password, m.Name, m.Team, m.Role, m.IsActive, m.CreatedAt)
		if err != nil {
			return fmt.Errorf("error seeding team member %s: %v", m.Email, err)
		}
	}

	log.Printf("Seeded %d team members from TEAM_MEMBERS_DATA", len(seeds))
	return nil
}

// ParseSeed decodes a TEAM_MEMBERS_DATA blob into ready-to-insert members.
func ParseSeed(blob string) ([]models.TeamMember, error) {
	var raw []struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Name      string `json:"name"`
		Team      string `json:"team"`
		Role      string `json:"role"`
		CreatedAt string `json:"createdAt"`
		IsActive  bool   `json:"isActive"`
	}
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, fmt.Errorf("error parsing team members data: %v", err)
	}

	members := make([]models.TeamMember, 0, len(raw))
	for _, r := range raw {
		password := r.Password
		if !looksHashed(password) {
			hashed, err := hashPassword(password)
			if err != nil {
				return nil, err
			}
			password = hashed
		}

		createdAt := time.Now()
		if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
			createdAt = t
		}

		role := r.Role
		if role == "" {
			role = models.RoleTeamMember
		}

		id := r.ID
		if id == "" {
			id = newMemberID()
		}

		members = append(members, models.TeamMember{
			ID:        id,
			Email:     r.Email,
			Password:  password,
			Name:      r.Name,
			Team:      r.Team,
			Role:      role,
			IsActive:  r.IsActive,
			CreatedAt: createdAt,
		})
	}
	return members, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}
	return string(hashed), nil
}

func looksHashed(password string) bool {
	return strings.HasPrefix(password, "$2a$") ||
		strings.HasPrefix(password, "$2b$") ||
		strings.HasPrefix(password, "$2y$")
}

func newMemberID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
