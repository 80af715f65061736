package models

import "github.com/shopspring/decimal"

// DailyCourse - значение курса за день и его разница с предыдущим торговым днем
type DailyCourse struct {
	Value                 decimal.Decimal `json:"value"`
	PreviousDayDifference decimal.Decimal `json:"difference"`
}
