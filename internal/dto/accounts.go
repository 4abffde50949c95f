package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OpenAccountRequestDTO struct {
	Type string `json:"type" example:"Savings"`
}

type AccountResponseDTO struct {
	Type    string          `json:"type" example:"Checking"`
	Number  string          `json:"number" example:"123-4567"`
	Balance decimal.Decimal `json:"balance" example:"100.50"`
}

type AmountRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"100.50"`
}

type BalanceResponseDTO struct {
	Number  string          `json:"number" example:"123-4567"`
	Balance decimal.Decimal `json:"balance" example:"100.50"`
}

type TransactionResponseDTO struct {
	Location string          `json:"location" example:"ATM"`
	Amount   decimal.Decimal `json:"amount" example:"-40"`
	Date     time.Time       `json:"date" example:"2020-12-09T16:09:57+03:00"`
	Memo     string          `json:"memo,omitempty" example:"Withdraw"`
}

type AddEntryRequestDTO struct {
	Location string          `json:"location" example:"Grocery Store"`
	Amount   decimal.Decimal `json:"amount" example:"-12.99"`
	Memo     string          `json:"memo,omitempty"`
}
