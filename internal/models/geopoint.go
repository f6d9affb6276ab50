package models

// GeoPoint is the canonical coordinate shape used everywhere in the service.
// Repositories normalize whatever the storage layer returns into this type
// before the value reaches classification or scoring code.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RegionBounds is the single bounding rectangle defining the jurisdiction of
// the service. Points outside it are unconditionally classified as restricted.
type RegionBounds struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Contains reports whether p lies inside the bounds. The comparison is written
// positively so NaN coordinates fail every check and land outside.
func (b RegionBounds) Contains(p GeoPoint) bool {
	return p.Latitude >= b.South && p.Latitude <= b.North &&
		p.Longitude >= b.West && p.Longitude <= b.East
}
