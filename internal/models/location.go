package models

// Location is an imported store as served by the lookup API, with numeric coordinates.
type Location struct {
	ID        int64   `json:"id"`
	Dataset   string  `json:"dataset"`
	Company   string  `json:"company,omitempty"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewLocation converts a store into its database form. It reports false if
// either coordinate does not parse.
func NewLocation(dataset string, s Store) (Location, bool) {
	lat, ok := ParseCoordinate(s.Latitude)
	if !ok {
		return Location{}, false
	}
	lon, ok := ParseCoordinate(s.Longitude)
	if !ok {
		return Location{}, false
	}

	city := s.City
	if city == "" {
		city = s.Region
	}

	return Location{
		Dataset:   dataset,
		Company:   s.Company,
		Name:      s.Name,
		Category:  s.CategoryKey(),
		Address:   s.Address,
		Phone:     s.Phone,
		City:      city,
		Latitude:  lat,
		Longitude: lon,
	}, true
}
