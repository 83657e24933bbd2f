package models

// Cost (kost) is an append-only expense entry.
type Cost struct {
	Date        string  `json:"datum"`
	Description string  `json:"beschrijving"`
	Category    string  `json:"categorie"`
	Amount      float64 `json:"bedrag"`
	Vehicle     string  `json:"wagen,omitempty"`
}

// OutstandingPayment is an unpaid customer invoice shown on the finance view.
type OutstandingPayment struct {
	Customer      string  `json:"klant"`
	InvoiceNumber string  `json:"factuur_nummer"`
	Amount        float64 `json:"bedrag"`
	DueDate       string  `json:"vervaldatum"`
	DaysOverdue   int     `json:"dagen_over_tijd"`
}

// Summons (dagvaarding) is a court case against a customer for an unpaid debt.
type Summons struct {
	Date       string  `json:"datum"`
	Customer   string  `json:"klant"`
	Amount     float64 `json:"bedrag"`
	Status     string  `json:"status"`
	LegalCosts float64 `json:"juridische_kosten"`
}
