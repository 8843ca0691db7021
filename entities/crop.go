package entities

type Crop struct {
	ID              int    `json:"Id"`
	FarmID          string `json:"farmId"`
	Name            string `json:"name"`
	Variety         string `json:"variety"`
	PlantedDate     string `json:"plantedDate"`
	ExpectedHarvest string `json:"expectedHarvest"`
	Stage           string `json:"stage"`  // planted|growing|ready|harvested
	Status          string `json:"status"` // healthy|attention|critical
	Notes           string `json:"notes"`
}

type CropInput struct {
	FarmID          string `json:"farmId"`
	Name            string `json:"name"`
	Variety         string `json:"variety"`
	PlantedDate     string `json:"plantedDate"`
	ExpectedHarvest string `json:"expectedHarvest"`
	Stage           string `json:"stage"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
}
