package entity

import "time"

// CandidateDraft carries the fields accepted when building a Candidate.
// Required fields are plain values; optional fields are pointers and are
// admitted into state only when non-nil, so empty strings are legal values
// and absence is expressed by the caller leaving the pointer nil.
type CandidateDraft struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CityID       *string
	Headline     *string
	LinkedinURL  *string
	ResumeURL    *string
}

// Candidate is a profile spanning the users root record and the candidates
// extension record. Both share the same identifier; the extension row is only
// ever written together with the root.
type Candidate struct {
	id           string
	email        string
	passwordHash string
	firstName    string
	lastName     string
	cityID       *string
	headline     *string
	linkedinURL  *string
	resumeURL    *string
	deleted      bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCandidate builds a Candidate from a draft. The identifier is assigned
// once and never reassigned.
func NewCandidate(id string, d CandidateDraft) *Candidate {
	return &Candidate{
		id:           id,
		email:        d.Email,
		passwordHash: d.PasswordHash,
		firstName:    d.FirstName,
		lastName:     d.LastName,
		cityID:       copyStr(d.CityID),
		headline:     copyStr(d.Headline),
		linkedinURL:  copyStr(d.LinkedinURL),
		resumeURL:    copyStr(d.ResumeURL),
	}
}

// RestoreCandidate rebuilds a Candidate from persisted storage values.
func RestoreCandidate(id string, d CandidateDraft, deleted bool, createdAt, updatedAt time.Time) *Candidate {
	c := NewCandidate(id, d)
	c.deleted = deleted
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c
}

func (c *Candidate) ID() string           { return c.id }
func (c *Candidate) Email() string        { return c.email }
func (c *Candidate) PasswordHash() string { return c.passwordHash }
func (c *Candidate) FirstName() string    { return c.firstName }
func (c *Candidate) LastName() string     { return c.lastName }
func (c *Candidate) Deleted() bool        { return c.deleted }
func (c *Candidate) CreatedAt() time.Time { return c.createdAt }
func (c *Candidate) UpdatedAt() time.Time { return c.updatedAt }

func (c *Candidate) CityID() (string, bool)      { return deref(c.cityID) }
func (c *Candidate) Headline() (string, bool)    { return deref(c.headline) }
func (c *Candidate) LinkedinURL() (string, bool) { return deref(c.linkedinURL) }
func (c *Candidate) ResumeURL() (string, bool)   { return deref(c.resumeURL) }

func (c *Candidate) SetEmail(v string)       { c.email = v }
func (c *Candidate) SetFirstName(v string)   { c.firstName = v }
func (c *Candidate) SetLastName(v string)    { c.lastName = v }
func (c *Candidate) SetCityID(v string)      { c.cityID = &v }
func (c *Candidate) SetHeadline(v string)    { c.headline = &v }
func (c *Candidate) SetLinkedinURL(v string) { c.linkedinURL = &v }
func (c *Candidate) SetResumeURL(v string)   { c.resumeURL = &v }

// State returns a snapshot of exactly the fields currently present.
// Absent optional fields produce no key at all. The password hash is
// deliberately excluded; it is reachable via PasswordHash only.
func (c *Candidate) State() map[string]any {
	s := map[string]any{
		"email":     c.email,
		"firstName": c.firstName,
		"lastName":  c.lastName,
	}
	putStr(s, "cityId", c.cityID)
	putStr(s, "headline", c.headline)
	putStr(s, "linkedinUrl", c.linkedinURL)
	putStr(s, "resumeUrl", c.resumeURL)
	return s
}
