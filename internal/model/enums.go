package model

const (
	DefaultLanguage = "ua"
	DefaultCurrency = "uah"
)

var (
	Languages  = []string{"ua", "pl", "en", "ru"}
	Currencies = []string{"uah", "pln", "usd", "eur"}
)

type OrderStatus string

const (
	OrderStatusNew OrderStatus = "new"
)

const DefaultMeasure = "шт."
