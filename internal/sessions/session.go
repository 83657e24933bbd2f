package sessions

import (
	"time"

	"github.com/autohandel/backoffice/internal/access"
)

// Session is the logged-in user of the back office. At most one is stored
// at a time; it has no expiry and lives until logout.
type Session struct {
	Username  string      `json:"username"`
	Role      access.Role `json:"role"`
	LoginTime time.Time   `json:"loginTime"`
}

// CanOpen reports whether the session's role may open module.
func (s *Session) CanOpen(m access.Module) bool {
	if s == nil {
		return false
	}
	return access.HasAccess(s.Role, m)
}
