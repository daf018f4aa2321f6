package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelRates_Price(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected Amount
		found    bool
	}{
		{
			name:     "offer retail rate first",
			payload:  `{"hotelId":"H1","roomTypes":[{"offerRetailRate":{"amount":100,"currency":"EUR"},"suggestedSellingPrice":{"amount":120,"currency":"EUR"}}]}`,
			expected: Amount{Amount: 100, Currency: "EUR"},
			found:    true,
		},
		{
			name:     "suggested selling price",
			payload:  `{"hotelId":"H1","roomTypes":[{"suggestedSellingPrice":{"amount":120,"currency":"USD"}}]}`,
			expected: Amount{Amount: 120, Currency: "USD"},
			found:    true,
		},
		{
			name:     "rate suggested selling price",
			payload:  `{"hotelId":"H1","roomTypes":[{"rates":[{"retailRate":{"suggestedSellingPrice":[{"amount":90,"currency":"GBP"}],"total":[{"amount":80,"currency":"GBP"}]}}]}]}`,
			expected: Amount{Amount: 90, Currency: "GBP"},
			found:    true,
		},
		{
			name:     "rate total",
			payload:  `{"hotelId":"H1","roomTypes":[{"rates":[{"retailRate":{"total":[{"amount":80,"currency":"GBP"}]}}]}]}`,
			expected: Amount{Amount: 80, Currency: "GBP"},
			found:    true,
		},
		{
			name:    "only first room type counts",
			payload: `{"hotelId":"H1","roomTypes":[{"rates":[]},{"offerRetailRate":{"amount":1,"currency":"EUR"}}]}`,
		},
		{
			name:    "no room types",
			payload: `{"hotelId":"H1","roomTypes":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rates HotelRates
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &rates))

			price, ok := rates.Price()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, price)
		})
	}
}

func TestRatesResponse_Valid(t *testing.T) {
	var resp RatesResponse
	require.NoError(t, json.Unmarshal([]byte(`{"data":[],"hotels":[]}`), &resp))
	assert.True(t, resp.Valid())

	require.NoError(t, json.Unmarshal([]byte(`{"data":[]}`), &resp))
	resp.Hotels = nil
	assert.False(t, resp.Valid())

	var nilResp *RatesResponse
	assert.False(t, nilResp.Valid())
}

func TestPlaceResponse_Valid(t *testing.T) {
	var resp PlaceResponse
	require.NoError(t, json.Unmarshal([]byte(
		`{"data":{"placeId":"P1","viewport":{"low":{"latitude":48.8,"longitude":2.2},"high":{"latitude":48.9,"longitude":2.4}},"location":{"latitude":48.85,"longitude":2.35}}}`,
	), &resp))
	assert.True(t, resp.Valid())
	assert.Equal(t, 48.9, resp.Data.Viewport.North())

	resp.Data.Location = nil
	assert.False(t, resp.Valid())
}
