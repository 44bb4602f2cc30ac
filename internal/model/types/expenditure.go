package types

type CreateExpenditureRequest struct {
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Date           string  `json:"date" validate:"required"`
	Description    string  `json:"description"`
	Category       string  `json:"category" validate:"required"`
	CustomCategory string  `json:"customCategory"`
	SpentBy        string  `json:"spentBy"`
}

type UpdateExpenditureRequest struct {
	CreateExpenditureRequest
}

// ExpenditureReport is one aggregated report row.
type ExpenditureReport struct {
	Period   string  `json:"period"`
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// MemberReport is one per-member aggregated row.
type MemberReport struct {
	SpentBy string  `json:"spentBy"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
}
