package directory

import "testing"

func TestManagerListDefaults(t *testing.T) {
	ml := NewManagerList("")

	if !ml.IsManager("akram@10minuteschool.com") {
		t.Fatal("expected default manager to be recognized")
	}
	if ml.IsManager("umama@10minuteschool.com") {
		t.Fatal("team member email should not match the manager list")
	}
}

func TestManagerListMergesEnvBlob(t *testing.T) {
	ml := NewManagerList(`[{"id":"2","email":"ops-lead@10minuteschool.com","name":"Ops Lead"}]`)

	if !ml.IsManager("ops-lead@10minuteschool.com") {
		t.Fatal("expected env blob manager to be recognized")
	}
	if !ml.IsManager("akram@10minuteschool.com") {
		t.Fatal("defaults must survive the merge")
	}

	m, ok := ml.Lookup("ops-lead@10minuteschool.com")
	if !ok {
		t.Fatal("lookup failed for merged manager")
	}
	if m.Role != "manager" {
		t.Fatalf("expected role to default to manager, got %q", m.Role)
	}
}

func TestManagerListCaseInsensitive(t *testing.T) {
	ml := NewManagerList("")
	if !ml.IsManager("Akram@10MinuteSchool.com") {
		t.Fatal("manager match should ignore case")
	}
}

func TestManagerListIgnoresBadBlob(t *testing.T) {
	ml := NewManagerList("{broken")
	if !ml.IsManager("akram@10minuteschool.com") {
		t.Fatal("defaults must survive a bad env blob")
	}
}
