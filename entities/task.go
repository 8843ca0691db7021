package entities

type Task struct {
	ID        int    `json:"Id"`
	FarmID    string `json:"farmId"`
	CropID    string `json:"cropId"`
	Title     string `json:"title"`
	Type      string `json:"type"` // watering|fertilizing|harvesting|inspection
	DueDate   string `json:"dueDate"`
	Priority  string `json:"priority"` // low|medium|high
	Completed bool   `json:"completed"`
	Recurring bool   `json:"recurring"`
	Notes     string `json:"notes"`
}

// TaskInput uses pointers for the optional flags so updates can tell
// "unset" from "false" and only write the fields that were supplied.
type TaskInput struct {
	FarmID    string  `json:"farmId"`
	CropID    string  `json:"cropId"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	DueDate   string  `json:"dueDate"`
	Priority  string  `json:"priority"`
	Completed *bool   `json:"completed"`
	Recurring *bool   `json:"recurring"`
	Notes     *string `json:"notes"`
}
