package entity

import "time"

// BlacklistTokenDraft carries the fields accepted when blacklisting a token.
type BlacklistTokenDraft struct {
	Token     string
	ExpiresAt time.Time
}

// BlacklistToken is a revoked access token. It is created once and never
// updated; expiry is evaluated by consumers, not enforced here.
type BlacklistToken struct {
	id        string
	token     string
	expiresAt time.Time
	createdAt time.Time
}

func NewBlacklistToken(id string, d BlacklistTokenDraft) *BlacklistToken {
	return &BlacklistToken{id: id, token: d.Token, expiresAt: d.ExpiresAt}
}

// RestoreBlacklistToken rebuilds a BlacklistToken from persisted storage values.
func RestoreBlacklistToken(id string, d BlacklistTokenDraft, createdAt time.Time) *BlacklistToken {
	t := NewBlacklistToken(id, d)
	t.createdAt = createdAt
	return t
}

func (t *BlacklistToken) ID() string           { return t.id }
func (t *BlacklistToken) Token() string        { return t.token }
func (t *BlacklistToken) ExpiresAt() time.Time { return t.expiresAt }
func (t *BlacklistToken) CreatedAt() time.Time { return t.createdAt }

// State returns a snapshot of the token fields.
func (t *BlacklistToken) State() map[string]any {
	return map[string]any{
		"token":     t.token,
		"expiresAt": t.expiresAt,
	}
}
