package request

import "zavvi-web/internal/domain/location"

type SelectLocationRequest struct {
	LocationID string `json:"locationId"`
}

type DismissRequest struct {
	Reason string `json:"reason" binding:"required,oneof=backdrop escape"`
}

type SetLocationRequest struct {
	ID        string  `json:"id"`
	Slug      string  `json:"slug"`
	Name      string  `json:"name" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *SetLocationRequest) ToDomain() location.Location {
	return location.Location{
		ID:        r.ID,
		Slug:      r.Slug,
		Name:      r.Name,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}
