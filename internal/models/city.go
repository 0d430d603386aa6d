package models

// City represents a single city record from the GeoNames dataset, with its coordinates, timezone, population and country code.
// The dataset is loaded once at startup and never mutated afterwards; handlers share read-only views of it.
type City struct {
	Name string  `json:"name" example:"London"`
	Lat  float64 `json:"lat" example:"51.50853"`
	Lng  float64 `json:"lng" example:"-0.12574"`
	Tz   string  `json:"tz" example:"Europe/London"`
	Pop  int     `json:"pop" example:"7556900"`
	Loc  string  `json:"loc" example:"GB"`
}
