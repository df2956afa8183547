package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop-api/internal/domain/entity"
)

// Views render entities from their state snapshot, so a field absent from
// state is absent from the payload rather than null.

func candidateView(c *entity.Candidate) gin.H {
	v := gin.H{"id": c.ID(), "created_at": c.CreatedAt(), "updated_at": c.UpdatedAt()}
	for k, val := range c.State() {
		v[k] = val
	}
	return v
}

func companyView(c *entity.Company) gin.H {
	v := gin.H{"id": c.ID(), "created_at": c.CreatedAt(), "updated_at": c.UpdatedAt()}
	for k, val := range c.State() {
		v[k] = val
	}
	return v
}

func locationView(l *entity.CompanyLocation) gin.H {
	v := gin.H{"id": l.ID(), "created_at": l.CreatedAt(), "updated_at": l.UpdatedAt()}
	for k, val := range l.State() {
		v[k] = val
	}
	return v
}

func cityView(c *entity.City) gin.H {
	return gin.H{"id": c.ID, "name": c.Name, "country_code": c.CountryCode}
}

func candidateViews(items []*entity.Candidate) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, it := range items {
		out = append(out, candidateView(it))
	}
	return out
}

func companyViews(items []*entity.Company) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, it := range items {
		out = append(out, companyView(it))
	}
	return out
}

func locationViews(items []*entity.CompanyLocation) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, it := range items {
		out = append(out, locationView(it))
	}
	return out
}
