package directory

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/hades874/10MS-Req-Dash/internal/models"
)

func TestParseSeedHashesPlaintextPasswords(t *testing.T) {
	blob := `[{"id":"1","email":"umama@10minuteschool.com","password":"password123","name":"Umama","team":"SMD","role":"team_member","createdAt":"2024-01-05T10:00:00Z","isActive":true}]`

	members, err := ParseSeed(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}

	m := members[0]
	if m.Password == "password123" {
		t.Fatal("plaintext password survived the import")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte("password123")); err != nil {
		t.Fatalf("imported hash does not verify: %v", err)
	}
	if m.CreatedAt.Year() != 2024 {
		t.Fatalf("createdAt not parsed, got %v", m.CreatedAt)
	}
}

func TestParseSeedKeepsExistingHashes(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	blob := `[{"id":"2","email":"shafqat@10minuteschool.com","password":"` + string(hashed) + `","name":"Shafqat","team":"QAC","isActive":true}]`

	members, err := ParseSeed(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if members[0].Password != string(hashed) {
		t.Fatal("already-hashed password was rewritten")
	}
}

func TestParseSeedFillsDefaults(t *testing.T) {
	blob := `[{"email":"new@10minuteschool.com","password":"pw","name":"New","team":"CM","isActive":true}]`

	members, err := ParseSeed(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := members[0]
	if m.ID == "" {
		t.Fatal("expected a generated id")
	}
	if m.Role != models.RoleTeamMember {
		t.Fatalf("expected default role, got %q", m.Role)
	}
	if m.CreatedAt.IsZero() {
		t.Fatal("expected createdAt fallback")
	}
}

func TestParseSeedRejectsBadJSON(t *testing.T) {
	if _, err := ParseSeed("{broken"); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
