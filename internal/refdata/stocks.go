package refdata

import "sort"

// StockQuote is the stored quote for a supported ticker.
type StockQuote struct {
	Ticker  string
	Company string
	Price   string
}

var quoteByTicker = map[string]StockQuote{
	"AAPL":  {Ticker: "AAPL", Company: "Apple Inc.", Price: "$185.50"},
	"GOOGL": {Ticker: "GOOGL", Company: "Alphabet Inc.", Price: "$142.25"},
	"MSFT":  {Ticker: "MSFT", Company: "Microsoft Corp.", Price: "$378.90"},
	"AMZN":  {Ticker: "AMZN", Company: "Amazon.com Inc.", Price: "$178.35"},
}

// QuoteByTicker returns the quote for a ticker symbol, matched
// case-insensitively with surrounding whitespace ignored.
func QuoteByTicker(ticker string) (StockQuote, bool) {
	q, ok := quoteByTicker[normalizeUpper(ticker)]
	return q, ok
}

// StockTickers returns all supported ticker symbols in stable order.
func StockTickers() []string {
	tickers := make([]string, 0, len(quoteByTicker))
	for t := range quoteByTicker {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}
