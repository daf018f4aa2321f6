package mapsdk

import (
	"strconv"
	"strings"
)

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"CHF": "CHF",
}

// CurrencySymbol возвращает символ валюты или сам код, если символ неизвестен
func CurrencySymbol(currency string) string {
	if symbol, ok := currencySymbols[strings.ToUpper(currency)]; ok {
		return symbol
	}
	return currency
}

// PriceLabel - подпись маркера отеля, например "100 €"
func PriceLabel(price float64, currency string) string {
	return strconv.FormatFloat(price, 'f', -1, 64) + " " + CurrencySymbol(currency)
}
