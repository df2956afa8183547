package entity

// City is read-only reference data used for existence checks; it is never
// created or mutated through the API.
type City struct {
	ID          string
	Name        string
	CountryCode string
}
