package domain

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencyPrefix = "$"

// FormatPrice renders a whole-unit amount with grouped thousands, e.g.
// "$895,000" for a sale and "$1,800/mo" for a rental.
func FormatPrice(price float64, priceType PriceType) string {
	formatted := currencyPrefix + groupThousands(price)
	if priceType == PriceTypeRent {
		return formatted + "/mo"
	}
	return formatted
}

// PricePerSquareFoot returns the rounded sale price per square foot. Rentals and
// listings without a floor area have no meaningful value.
func PricePerSquareFoot(p Property) (int, bool) {
	if p.PriceType != PriceTypeSale || p.SquareFeet <= 0 {
		return 0, false
	}
	return int(math.Round(p.Price / float64(p.SquareFeet))), true
}

// FormatPricePerSquareFoot renders e.g. "$510/sqft".
func FormatPricePerSquareFoot(value int) string {
	return currencyPrefix + groupThousands(float64(value)) + "/sqft"
}

func groupThousands(amount float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d", int64(math.Round(amount)))
}
