package directory

import (
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/hades874/10MS-Req-Dash/internal/models"
)

// Compiled-in manager allow-list. MANAGERS_DATA entries are merged on top.
var defaultManagers = []models.Manager{
	{ID: "1", Email: "akram@10minuteschool.com", Name: "Akram", Role: models.RoleManager},
}

// ManagerList is the static allow-list used to label Google-authenticated
// callers as managers. It is deliberately separate from the team_members
// table.
type ManagerList struct {
	mu      sync.RWMutex
	byEmail map[string]models.Manager
}

func NewManagerList(managersData string) *ManagerList {
	ml := &ManagerList{byEmail: make(map[string]models.Manager)}
	for _, m := range defaultManagers {
		ml.byEmail[strings.ToLower(m.Email)] = m
	}

	if managersData != "" {
		var extra []models.Manager
		if err := json.Unmarshal([]byte(managersData), &extra); err != nil {
			log.Printf("Error parsing managers data: %v", err)
		} else {
			for _, m := range extra {
				if m.Role == "" {
					m.Role = models.RoleManager
				}
				ml.byEmail[strings.ToLower(m.Email)] = m
			}
		}
	}

	return ml
}

// IsManager reports whether the email is on the allow-list, case-insensitive.
func (ml *ManagerList) IsManager(email string) bool {
	ml.mu.RLock()
	defer ml.mu.RUnlock()
	_, ok := ml.byEmail[strings.ToLower(email)]
	return ok
}

func (ml *ManagerList) Lookup(email string) (models.Manager, bool) {
	ml.mu.RLock()
	defer ml.mu.RUnlock()
	m, ok := ml.byEmail[strings.ToLower(email)]
	return m, ok
}
