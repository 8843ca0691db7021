package entities

// Income stays close to the raw record shape (the UI renders the
// suffixed names directly); only the farm reference is normalized.
type Income struct {
	ID     int     `json:"Id"`
	Name   string  `json:"Name"`
	Tags   string  `json:"Tags"`
	FarmID string  `json:"farm_id_c"`
	Amount float64 `json:"amount_c"`
	Date   string  `json:"date_c"`
}
