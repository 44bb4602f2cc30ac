package types

type CreateTransactionRequest struct {
	Name              string  `json:"name" validate:"required"`
	Email             string  `json:"email" validate:"omitempty,email"`
	Phone             string  `json:"phone" validate:"omitempty,len=10,numeric"`
	UserType          string  `json:"userType" validate:"omitempty,caseinsensitiveoneof=individual organization"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	Type              string  `json:"type" validate:"required"`
	ReferenceID       string  `json:"transactionId"`
	Date              string  `json:"date" validate:"required"`
	TransactionNature string  `json:"transactionNature" validate:"required,caseinsensitiveoneof=credit debit"`
	Description       string  `json:"description"`
	Status            string  `json:"status" validate:"omitempty,caseinsensitiveoneof=pending verified rejected"`
	MoneyFor          string  `json:"moneyFor"`
	CustomMoneyFor    string  `json:"customMoneyFor"`
	EntryType         string  `json:"entryType"`
	EntryBy           string  `json:"entryBy"`
}

type UpdateTransactionRequest struct {
	CreateTransactionRequest
}

// DonationEntry is the calendar-facing shape of a transaction.
type DonationEntry struct {
	ID                int64   `json:"id"`
	Date              string  `json:"date"`
	Amount            float64 `json:"amount"`
	TransactionNature string  `json:"transactionNature"`
	Description       string  `json:"description"`
	UserName          string  `json:"userName"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Type              string  `json:"type"`
	ReferenceID       string  `json:"transactionId"`
	UserType          string  `json:"userType"`
	Status            string  `json:"status"`
	MoneyFor          string  `json:"moneyFor"`
	CustomMoneyFor    string  `json:"customMoneyFor"`
	EntryType         string  `json:"entryType"`
	EntryBy           string  `json:"entryBy"`
}

// TransactionStats is the admin dashboard aggregate.
type TransactionStats struct {
	TotalCredit   float64 `json:"totalCredit"`
	TotalDebit    float64 `json:"totalDebit"`
	NetBalance    float64 `json:"netBalance"`
	PendingCount  int     `json:"pendingCount"`
	VerifiedCount int     `json:"verifiedCount"`
	RejectedCount int     `json:"rejectedCount"`
	Total         int     `json:"total"`
}
