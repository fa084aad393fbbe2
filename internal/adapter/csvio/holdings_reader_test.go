package csvio_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/divrec/internal/adapter/csvio"
	"github.com/iho/divrec/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadHoldings(t *testing.T) {
	path := writeFile(t, "holdings.csv",
		"isin,record_date,client_number,product_code,account_number,shares\n"+
			"GB00TEST0001,2026-01-01,12345678,22,1234567822,100\n"+
			"GB00TEST0001,2026-01-01,12345678,70,1234567870,250\n")

	holdings, err := csvio.NewHoldingsReader().ReadHoldings(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, holdings, 2)

	assert.Equal(t, domain.Holding{
		ISIN:          "GB00TEST0001",
		RecordDate:    "2026-01-01",
		ClientNumber:  "12345678",
		ProductCode:   22,
		AccountNumber: "1234567822",
		Shares:        100,
	}, holdings[0])
	assert.Equal(t, int64(250), holdings[1].Shares)
	assert.Equal(t, 70, holdings[1].ProductCode)
}

func TestReadHoldingsReordersColumns(t *testing.T) {
	path := writeFile(t, "holdings.csv",
		"shares,client_number,isin,account_number,product_code,record_date\n"+
			"100,12345678,GB00TEST0001,1234567822,22,2026-01-01\n")

	holdings, err := csvio.NewHoldingsReader().ReadHoldings(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, "12345678", holdings[0].ClientNumber)
	assert.Equal(t, int64(100), holdings[0].Shares)
}

func TestReadHoldingsMissingColumn(t *testing.T) {
	path := writeFile(t, "holdings.csv",
		"isin,record_date,client_number,product_code,account_number\n"+
			"GB00TEST0001,2026-01-01,12345678,22,1234567822\n")

	_, err := csvio.NewHoldingsReader().ReadHoldings(context.Background(), path)
	require.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.Equal(t, "MISSING_COLUMN", domain.Code(err))
}

func TestReadHoldingsBadNumerics(t *testing.T) {
	header := "isin,record_date,client_number,product_code,account_number,shares\n"

	t.Run("product code", func(t *testing.T) {
		path := writeFile(t, "holdings.csv",
			header+"GB00TEST0001,2026-01-01,12345678,abc,1234567822,100\n")

		_, err := csvio.NewHoldingsReader().ReadHoldings(context.Background(), path)
		require.ErrorIs(t, err, domain.ErrUnknownProductCode)
	})

	t.Run("shares", func(t *testing.T) {
		path := writeFile(t, "holdings.csv",
			header+"GB00TEST0001,2026-01-01,12345678,22,1234567822,ten\n")

		_, err := csvio.NewHoldingsReader().ReadHoldings(context.Background(), path)
		require.ErrorIs(t, err, domain.ErrBadShares)
	})
}

func TestReadHoldingsMissingFile(t *testing.T) {
	_, err := csvio.NewHoldingsReader().ReadHoldings(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestReadHoldingsEmptyBody(t *testing.T) {
	path := writeFile(t, "holdings.csv",
		"isin,record_date,client_number,product_code,account_number,shares\n")

	holdings, err := csvio.NewHoldingsReader().ReadHoldings(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, holdings)
}
