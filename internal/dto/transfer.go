package dto

import "github.com/shopspring/decimal"

type TransferRequestDTO struct {
	From   string          `json:"from" example:"123-4567"`
	To     string          `json:"to" example:"765-4321"`
	Amount decimal.Decimal `json:"amount" example:"40"`
}

type TransferResponseDTO struct {
	FromBalance decimal.Decimal `json:"from_balance" example:"60"`
	ToBalance   decimal.Decimal `json:"to_balance" example:"40"`
}
