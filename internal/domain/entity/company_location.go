package entity

import "time"

// CompanyLocationDraft carries the fields accepted when building a
// CompanyLocation. CompanyID and IsRemote are required; everything else is
// optional and admitted only when non-nil.
type CompanyLocationDraft struct {
	CompanyID string
	IsRemote  bool
	Name      *string
	Address   *string
	CityID    *string
	Latitude  *float64
	Longitude *float64
}

// CompanyLocation is an office or remote posting location of a company.
//
// A remote location carries no address, city, or coordinates. A physical
// location with coordinates always has an address and a city on the create
// path; the storage layer encodes the coordinate pair into a single geometry
// column, the entity only ever sees plain latitude/longitude values.
type CompanyLocation struct {
	id        string
	companyID string
	isRemote  bool
	name      *string
	address   *string
	cityID    *string
	latitude  *float64
	longitude *float64
	deleted   bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCompanyLocation(id string, d CompanyLocationDraft) *CompanyLocation {
	return &CompanyLocation{
		id:        id,
		companyID: d.CompanyID,
		isRemote:  d.IsRemote,
		name:      copyStr(d.Name),
		address:   copyStr(d.Address),
		cityID:    copyStr(d.CityID),
		latitude:  copyF64(d.Latitude),
		longitude: copyF64(d.Longitude),
	}
}

// RestoreCompanyLocation rebuilds a CompanyLocation from persisted storage values.
func RestoreCompanyLocation(id string, d CompanyLocationDraft, deleted bool, createdAt, updatedAt time.Time) *CompanyLocation {
	l := NewCompanyLocation(id, d)
	l.deleted = deleted
	l.createdAt = createdAt
	l.updatedAt = updatedAt
	return l
}

func (l *CompanyLocation) ID() string           { return l.id }
func (l *CompanyLocation) CompanyID() string    { return l.companyID }
func (l *CompanyLocation) IsRemote() bool       { return l.isRemote }
func (l *CompanyLocation) Deleted() bool        { return l.deleted }
func (l *CompanyLocation) CreatedAt() time.Time { return l.createdAt }
func (l *CompanyLocation) UpdatedAt() time.Time { return l.updatedAt }

func (l *CompanyLocation) Name() (string, bool)       { return deref(l.name) }
func (l *CompanyLocation) Address() (string, bool)    { return deref(l.address) }
func (l *CompanyLocation) CityID() (string, bool)     { return deref(l.cityID) }
func (l *CompanyLocation) Latitude() (float64, bool)  { return derefF64(l.latitude) }
func (l *CompanyLocation) Longitude() (float64, bool) { return derefF64(l.longitude) }

func (l *CompanyLocation) SetName(v string)       { l.name = &v }
func (l *CompanyLocation) SetAddress(v string)    { l.address = &v }
func (l *CompanyLocation) SetCityID(v string)     { l.cityID = &v }
func (l *CompanyLocation) SetLatitude(v float64)  { l.latitude = &v }
func (l *CompanyLocation) SetLongitude(v float64) { l.longitude = &v }

// State returns a snapshot of exactly the fields currently present.
func (l *CompanyLocation) State() map[string]any {
	s := map[string]any{
		"companyId": l.companyID,
		"isRemote":  l.isRemote,
	}
	putStr(s, "name", l.name)
	putStr(s, "address", l.address)
	putStr(s, "cityId", l.cityID)
	putF64(s, "latitude", l.latitude)
	putF64(s, "longitude", l.longitude)
	return s
}
