package services

import "github.com/shopspring/decimal"

// DaysUntilStockout projects how many days the current stock lasts at the
// given average daily sales rate. Returns nil when ads is zero or negative:
// with no velocity the stock never runs out, and nil keeps that case
// distinct from "0 days left." Finite projections are fractional days
// rounded half-up to two decimal places.
func DaysUntilStockout(currentStock, ads decimal.Decimal) *decimal.Decimal {
	if ads.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	days := currentStock.Div(ads).Round(2)
	return &days
}
