package config

import "github.com/shopspring/decimal"

func GetEnvAsBool(key string, defaultValue bool) bool {
	return getEnvAsBool(key, defaultValue)
}

func AllDecimals(keyValues map[string]string) (map[string]decimal.Decimal, error) {
	return allDecimals(keyValues)
}
