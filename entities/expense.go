package entities

type Expense struct {
	ID            int     `json:"Id"`
	FarmID        string  `json:"farmId"`
	Category      string  `json:"category"` // seeds|fertilizer|equipment|labor|fuel|other
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	PaymentMethod string  `json:"paymentMethod"`
}

type ExpenseInput struct {
	FarmID        string `json:"farmId"`
	Category      string `json:"category"`
	Amount        string `json:"amount"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	PaymentMethod string `json:"paymentMethod"`
}
