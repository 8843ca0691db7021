package entities

type Equipment struct {
	ID            int     `json:"Id"`
	FarmID        string  `json:"farmId"`
	Name          string  `json:"name"`
	Type          string  `json:"type"` // tractor|harvester|irrigation|tool|vehicle
	Manufacturer  string  `json:"manufacturer"`
	Model         string  `json:"model"`
	PurchaseDate  string  `json:"purchaseDate"`
	PurchasePrice float64 `json:"purchasePrice"`
	Condition     string  `json:"condition"` // excellent|good|fair|poor|retired
	Notes         string  `json:"notes"`
}

type EquipmentInput struct {
	FarmID        string `json:"farmId"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Manufacturer  string `json:"manufacturer"`
	Model         string `json:"model"`
	PurchaseDate  string `json:"purchaseDate"`
	PurchasePrice string `json:"purchasePrice"`
	Condition     string `json:"condition"`
	Notes         string `json:"notes"`
}
