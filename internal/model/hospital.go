package model

// GeoLocation is a point with a human readable address
type GeoLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Hospital represents a hospital available for emergencies
type Hospital struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Location       GeoLocation `json:"location"`
	EmergencyPhone string      `json:"emergencyPhone"`
	GeneralPhone   string      `json:"generalPhone"`
	Departments    []string    `json:"departments"`
	Distance       string      `json:"distance"` // Display string, e.g. "2.3 km"
}

// Clone returns a copy that doesn't share the departments slice
func (h Hospital) Clone() Hospital {
	h.Departments = cloneStrings(h.Departments)
	return h
}

// NearbyQuery holds the caller position for the nearby listing
type NearbyQuery struct {
	Lat *float64
	Lng *float64
}
