package payments

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCryptoAmount(t *testing.T) {
	cases := []struct {
		name      string
		fiatMinor int64
		rate      string
		want      string
	}{
		{"two products at rate 1", 200000, "1", "2000"},
		{"typical usdt rate", 200000, "100", "20"},
		{"thirds truncate", 100, "3", "0.333333"},
		{"repeating decimal rounds up", 200, "3", "0.666667"},
		{"exact half rounds away from zero", 1, "32", "0.000313"},
		{"zero amount", 0, "79.5", "0"},
		{"kopeck precision survives", 199, "1", "1.99"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rate, err := decimal.NewFromString(tc.rate)
			require.NoError(t, err)

			got := ToCryptoAmount(tc.fiatMinor, rate)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"got %s, want %s", got, tc.want)
		})
	}
}

func TestToCryptoAmountIsDeterministic(t *testing.T) {
	rate := decimal.RequireFromString("79.37")
	for _, minor := range []int64{1, 99, 100, 12345, 1000000, 987654321} {
		a := ToCryptoAmount(minor, rate)
		b := ToCryptoAmount(minor, rate)
		assert.True(t, a.Equal(b), "minor=%d: %s != %s", minor, a, b)
	}
}

func TestToCryptoAmountPrecision(t *testing.T) {
	rates := []string{"1", "3", "7.77", "79.37", "101.123456"}
	for _, r := range rates {
		rate := decimal.RequireFromString(r)
		for _, minor := range []int64{1, 99, 12345, 99999999} {
			got := ToCryptoAmount(minor, rate)
			assert.GreaterOrEqual(t, got.Exponent(), int32(-6),
				"minor=%d rate=%s: more than 6 decimal places in %s", minor, r, got)
		}
	}
}

func TestToCryptoAmountRoundTrip(t *testing.T) {
	// Converting back should land within one truncation unit of the
	// original minor amount: |crypto * rate * 100 - minor| <= rate * 100 * 1e-6.
	rates := []string{"0.5", "1", "3", "79.37", "150"}
	for _, r := range rates {
		rate := decimal.RequireFromString(r)
		tolerance := rate.Mul(decimal.RequireFromString("0.0001"))
		for _, minor := range []int64{1, 100, 2000, 54321, 10000000} {
			crypto := ToCryptoAmount(minor, rate)
			back := crypto.Mul(rate).Mul(decimal.NewFromInt(100))
			diff := back.Sub(decimal.NewFromInt(minor)).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerance),
				"minor=%d rate=%s: round trip drifted by %s", minor, r, diff)
		}
	}
}
