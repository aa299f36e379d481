package session

import "maps"

// UserRecord is the user object returned by the backend. Its schema belongs
// to the server; only "email" is relied upon.
type UserRecord map[string]any

// Email returns the "email" field, or "" when absent.
func (u UserRecord) Email() string {
	s, _ := u["email"].(string)
	return s
}

// String returns a top-level string field, or "" when absent.
func (u UserRecord) String(key string) string {
	s, _ := u[key].(string)
	return s
}

func (u UserRecord) clone() UserRecord {
	if u == nil {
		return nil
	}
	return maps.Clone(u)
}

// Session is a snapshot of the authentication state.
type Session struct {
	User  UserRecord
	Token string
}

// IsAuthenticated is true iff both a user and a token are present.
func (s Session) IsAuthenticated() bool {
	return len(s.User) > 0 && s.Token != ""
}
