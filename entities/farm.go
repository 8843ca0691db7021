package entities

// Farm is the flat UI-facing shape; the record store keeps the suffixed
// columns (name_c, size_c, ...) in table farm_c.
type Farm struct {
	ID            int     `json:"Id"`
	Name          string  `json:"name"`
	Size          float64 `json:"size"`
	Unit          string  `json:"unit"` // acres|hectares
	Location      string  `json:"location"`
	SoilType      string  `json:"soilType"`
	CurrentAmount float64 `json:"currentAmount"`
	CreatedAt     string  `json:"createdAt"`
}

// FarmInput carries form values as submitted; numeric fields arrive as
// strings and are parsed by the service before they reach the store.
type FarmInput struct {
	Name          string `json:"name"`
	Size          string `json:"size"`
	Unit          string `json:"unit"`
	Location      string `json:"location"`
	SoilType      string `json:"soilType"`
	CurrentAmount string `json:"currentAmount"`
}
