package entity

import "time"

// CompanyDraft carries the fields accepted when building a Company.
type CompanyDraft struct {
	Name        string
	Website     *string
	Description *string
}

// Company is an employer account. Name is unique among non-deleted companies.
type Company struct {
	id          string
	name        string
	website     *string
	description *string
	deleted     bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCompany(id string, d CompanyDraft) *Company {
	return &Company{
		id:          id,
		name:        d.Name,
		website:     copyStr(d.Website),
		description: copyStr(d.Description),
	}
}

// RestoreCompany rebuilds a Company from persisted storage values.
func RestoreCompany(id string, d CompanyDraft, deleted bool, createdAt, updatedAt time.Time) *Company {
	c := NewCompany(id, d)
	c.deleted = deleted
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c
}

func (c *Company) ID() string           { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) Deleted() bool        { return c.deleted }
func (c *Company) CreatedAt() time.Time { return c.createdAt }
func (c *Company) UpdatedAt() time.Time { return c.updatedAt }

func (c *Company) Website() (string, bool)     { return deref(c.website) }
func (c *Company) Description() (string, bool) { return deref(c.description) }

func (c *Company) SetName(v string)        { c.name = v }
func (c *Company) SetWebsite(v string)     { c.website = &v }
func (c *Company) SetDescription(v string) { c.description = &v }

// State returns a snapshot of exactly the fields currently present.
func (c *Company) State() map[string]any {
	s := map[string]any{"name": c.name}
	putStr(s, "website", c.website)
	putStr(s, "description", c.description)
	return s
}
