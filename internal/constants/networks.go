package constants

// Base currency codes of the EVM networks shipped with the wallet plugins.
// A schedule file may leave base_currency_code out for these networks.
var NetworkBaseCurrencies = map[string]string{
	"ethereum":          "ETH",
	"ethereumclassic":   "ETC",
	"binancesmartchain": "BNB",
	"fantom":            "FTM",
	"rsk":               "RBTC",
	"polygon":           "MATIC",
	"celo":              "CELO",
	"avalanche":         "AVAX",
}

// BaseCurrencyForNetwork returns the known base currency code for a network
func BaseCurrencyForNetwork(network string) (string, bool) {
	code, ok := NetworkBaseCurrencies[network]
	return code, ok
}
