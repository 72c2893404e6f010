package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRateTable_UnmarshalKeepsProviderOrder(t *testing.T) {
	var table RateTable
	require.NoError(t, json.Unmarshal([]byte(`{"USD": 1, "AED": 3.67, "EUR": 0.92, "AFN": 70.5}`), &table))

	require.Equal(t, []string{"USD", "AED", "EUR", "AFN"}, table.Codes())
	rate, ok := table.Rate("EUR")
	require.True(t, ok)
	require.InDelta(t, 0.92, rate, 1e-9)
}

func TestRateTable_DuplicateKeyKeepsFirstPositionAndLastValue(t *testing.T) {
	var table RateTable
	require.NoError(t, json.Unmarshal([]byte(`{"EUR": 0.9, "GBP": 0.8, "EUR": 0.95}`), &table))

	require.Equal(t, []string{"EUR", "GBP"}, table.Codes())
	rate, _ := table.Rate("EUR")
	require.InDelta(t, 0.95, rate, 1e-9)
}

func TestRateTable_UnmarshalRejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"array":         `[1, 2]`,
		"string rate":   `{"EUR": "0.9"}`,
		"negative rate": `{"EUR": -1}`,
		"zero rate":     `{"EUR": 0}`,
		"truncated":     `{"EUR": 0.9`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var table RateTable
			require.Error(t, json.Unmarshal([]byte(raw), &table))
		})
	}
}

func TestRateTable_CodesReturnsCopy(t *testing.T) {
	table := NewRateTable("USD")
	table.Put("EUR", 0.9)
	table.Put("JPY", 150)

	codes := table.Codes()
	codes[0] = "XXX"

	require.Equal(t, []string{"EUR", "JPY"}, table.Codes())
	require.Equal(t, 2, table.Len())
}

func TestConversion_Text(t *testing.T) {
	c := Conversion{Source: "USD", Target: "EUR", Amount: "100", Converted: "90.00"}
	require.Equal(t, "100 USD = 90.00 EUR", c.Text())
}
