// Package models defines client-side data models used by the InfoWise CLI.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UserID is the backend's opaque user identifier. The API is inconsistent
// about its JSON type, so both numbers and strings are accepted.
type UserID string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (u *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*u = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*u = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*u = UserID(n.String())
	return nil
}

// MarshalJSON emits a number when the id is numeric, a string otherwise.
func (u UserID) MarshalJSON() ([]byte, error) {
	if n, ok := u.Int64(); ok {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(u))
}

// Int64 reports the numeric value of the id, if it has one.
func (u UserID) Int64() (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(string(u)), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (u UserID) String() string { return string(u) }

// Session is the authenticated identity returned by login and register.
type Session struct {
	Token  string `json:"token"`
	UserID UserID `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Complete reports whether every field required to restore a session is set.
func (s Session) Complete() bool {
	return s.Token != "" && s.UserID != "" && s.Email != "" && s.Role != ""
}

// Credentials is the body of the login and register calls.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
