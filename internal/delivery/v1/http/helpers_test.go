package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DRSN-tech/retail-backend/pkg/e"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{"599.99", 59999, nil},
		{"600", 60000, nil},
		{"0.01", 1, nil},
		{"9.99", 999, nil},
		{"", 0, e.ErrInvalidPrice},
		{"abc", 0, e.ErrInvalidPrice},
		{"-5", 0, e.ErrInvalidPrice},
		{"1.999", 0, e.ErrPricePrecision},
	}

	for _, tc := range cases {
		got, err := parsePriceToCents(tc.in)
		if tc.wantErr != nil {
			assert.ErrorIs(t, err, tc.wantErr, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseTaxPercentToBP(t *testing.T) {
	bp, err := parseTaxPercentToBP("10")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), bp)

	bp, err = parseTaxPercentToBP("8.25")
	require.NoError(t, err)
	assert.Equal(t, int64(825), bp)

	// Пустая ставка означает необлагаемый товар.
	bp, err = parseTaxPercentToBP("")
	require.NoError(t, err)
	assert.Equal(t, int64(0), bp)

	_, err = parseTaxPercentToBP("101")
	assert.ErrorIs(t, err, e.ErrInvalidTaxPercent)

	_, err = parseTaxPercentToBP("-1")
	assert.ErrorIs(t, err, e.ErrInvalidTaxPercent)

	_, err = parseTaxPercentToBP("8.255")
	assert.ErrorIs(t, err, e.ErrInvalidTaxPercent)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "21.98", formatCents(2198))
	assert.Equal(t, "0.00", formatCents(0))
	assert.Equal(t, "600.00", formatCents(60000))
}

func TestFormatBP(t *testing.T) {
	assert.Equal(t, "10", formatBP(1000))
	assert.Equal(t, "8.25", formatBP(825))
	assert.Equal(t, "0", formatBP(0))
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.ErrUnauthenticated, http.StatusUnauthorized},
		{e.ErrForbidden, http.StatusForbidden},
		{e.ErrOrderNotFound, http.StatusNotFound},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrInsufficientStock, http.StatusConflict},
		{e.ErrStatusNotAllowed, http.StatusConflict},
		{e.ErrEmptyOrderItems, http.StatusBadRequest},
		{e.ErrInvalidQuantity, http.StatusBadRequest},
		{e.ErrNegativeStock, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, msg := ToHTTPResponse(tc.err)
		assert.Equal(t, tc.code, code, "error %v", tc.err)
		assert.NotEmpty(t, msg)
	}
}

func TestToHTTPResponse_Wrapped(t *testing.T) {
	// Обёртки с контекстом места возникновения не меняют HTTP-код.
	code, _ := ToHTTPResponse(e.Wrap("OrderUseCase.CreateOrder", e.ErrInsufficientStock))
	assert.Equal(t, http.StatusConflict, code)
}
