package domain

import "strings"

// EntryType separates money coming in from money going out.
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// IsValid reports whether t is income or expense.
func (t EntryType) IsValid() bool {
	return t == EntryIncome || t == EntryExpense
}

// BudgetEntry is one income or expense line bucketed by month and year.
type BudgetEntry struct {
	Record      `bson:",inline"`
	Category    string    `json:"category" bson:"category"`
	Amount      float64   `json:"amount" bson:"amount"`
	Spent       float64   `json:"spent" bson:"spent"`
	Description string    `json:"description" bson:"description"`
	Month       int       `json:"month" bson:"month"`
	Year        int       `json:"year" bson:"year"`
	Type        EntryType `json:"type" bson:"type"`
}

// BudgetFields carries caller supplied budget entry fields.
type BudgetFields struct {
	Category    *string    `json:"category"`
	Amount      *float64   `json:"amount"`
	Spent       *float64   `json:"spent"`
	Description *string    `json:"description"`
	Month       *int       `json:"month"`
	Year        *int       `json:"year"`
	Type        *EntryType `json:"type"`
}

// NewBudgetEntry builds a budget entry from create fields. Spent starts at zero.
func NewBudgetEntry(f BudgetFields) BudgetEntry {
	var b BudgetEntry
	b.Apply(f)
	return b
}

// Apply replaces every field present in f.
func (b *BudgetEntry) Apply(f BudgetFields) {
	if f.Category != nil {
		b.Category = strings.TrimSpace(*f.Category)
	}
	if f.Amount != nil {
		b.Amount = *f.Amount
	}
	if f.Spent != nil {
		b.Spent = *f.Spent
	}
	if f.Description != nil {
		b.Description = *f.Description
	}
	if f.Month != nil {
		b.Month = *f.Month
	}
	if f.Year != nil {
		b.Year = *f.Year
	}
	if f.Type != nil {
		b.Type = *f.Type
	}
}

// Signed returns the amount as a contribution to the balance.
func (b BudgetEntry) Signed() float64 {
	if b.Type == EntryIncome {
		return b.Amount
	}
	return -b.Amount
}

// InPeriod reports whether the entry is bucketed in the given month and year.
func (b BudgetEntry) InPeriod(month, year int) bool {
	return b.Month == month && b.Year == year
}

// Balance is Σincome − Σexpense over entries.
func Balance(entries []*BudgetEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Signed()
	}
	return total
}
