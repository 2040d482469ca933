package tools

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-agent-go/tool"
	"trpc.group/trpc-go/trpc-agent-go/tool/function"

	"github.com/selvam85/google-adk-samples/internal/refdata"
)

type stockRequest struct {
	Ticker string `json:"ticker" jsonschema:"description=Stock ticker symbol such as AAPL or GOOGL"`
}

type stockResponse struct {
	Status  string `json:"status,omitempty"`
	Ticker  string `json:"ticker,omitempty"`
	Company string `json:"company,omitempty"`
	Price   string `json:"price,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewStockTool returns the get_stock_price tool backed by the static quote
// table.
func NewStockTool() tool.CallableTool {
	return function.NewFunctionTool(
		getStockPrice,
		function.WithName("get_stock_price"),
		function.WithDescription("Get the current stock price for a ticker symbol. "+
			"Supported tickers: "+strings.Join(refdata.StockTickers(), ", ")+"."),
	)
}

func getStockPrice(_ context.Context, req stockRequest) (stockResponse, error) {
	q, ok := refdata.QuoteByTicker(req.Ticker)
	if !ok {
		return stockResponse{
			Status: statusUnsupported,
			Message: fmt.Sprintf("Stock price not available for %q. Supported tickers: %s",
				req.Ticker, strings.Join(refdata.StockTickers(), ", ")),
		}, nil
	}
	return stockResponse{
		Ticker:  q.Ticker,
		Company: q.Company,
		Price:   q.Price,
	}, nil
}
