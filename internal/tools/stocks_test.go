package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetStockPrice_SupportedTickers(t *testing.T) {
	tests := []struct {
		query       string
		wantTicker  string
		wantCompany string
		wantPrice   string
	}{
		{query: "AAPL", wantTicker: "AAPL", wantCompany: "Apple Inc.", wantPrice: "$185.50"},
		{query: "googl", wantTicker: "GOOGL", wantCompany: "Alphabet Inc.", wantPrice: "$142.25"},
		{query: " msft ", wantTicker: "MSFT", wantCompany: "Microsoft Corp.", wantPrice: "$378.90"},
		{query: "Amzn", wantTicker: "AMZN", wantCompany: "Amazon.com Inc.", wantPrice: "$178.35"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rsp, err := getStockPrice(context.Background(), stockRequest{Ticker: tt.query})
			require.NoError(t, err)
			require.Empty(t, rsp.Status)
			require.Equal(t, tt.wantTicker, rsp.Ticker)
			require.Equal(t, tt.wantCompany, rsp.Company)
			require.Equal(t, tt.wantPrice, rsp.Price)
		})
	}
}

func TestGetStockPrice_Unsupported(t *testing.T) {
	rsp, err := getStockPrice(context.Background(), stockRequest{Ticker: "TSLA"})
	require.NoError(t, err)
	require.Equal(t, statusUnsupported, rsp.Status)
	require.Contains(t, rsp.Message, `"TSLA"`)
	require.Contains(t, rsp.Message, "AAPL")
}

func TestNewStockTool_Declaration(t *testing.T) {
	decl := NewStockTool().Declaration()
	require.NotNil(t, decl)
	require.Equal(t, "get_stock_price", decl.Name)
}
