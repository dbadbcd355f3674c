package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString_Valid(t *testing.T) {
	m, err := FromString("10.50")
	require.NoError(t, err)
	assert.Equal(t, "10.50", m.String())

	m, err = FromString("100")
	require.NoError(t, err)
	assert.Equal(t, "100.00", m.String())

	m, err = FromString("0.01")
	require.NoError(t, err)
	assert.Equal(t, "0.01", m.String())

	m, err = FromString("-20.00")
	require.NoError(t, err)
	assert.Equal(t, "-20.00", m.String())
}

func TestFromString_RejectsTooManyDecimals(t *testing.T) {
	_, err := FromString("10.505")
	require.Error(t, err)

	_, err = FromString("0.001")
	require.Error(t, err)
}

func TestFromString_RejectsGarbage(t *testing.T) {
	_, err := FromString("abc")
	require.Error(t, err)

	_, err = FromString("")
	require.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	a := MustFromString("100.00")
	b := MustFromString("20.00")

	assert.Equal(t, "80.00", a.Sub(b).String())
	assert.Equal(t, "120.00", a.Add(b).String())
	assert.Equal(t, "-20.00", b.Neg().String())
	assert.True(t, b.LessThan(a))
	assert.True(t, a.GreaterThan(b))
	assert.True(t, a.Equal(MustFromString("100.0")))
}

func TestMulOdds_RoundsHalfUp(t *testing.T) {
	// 10.00 * 2.505 = 25.05, exact
	payout := MustFromString("10.00").MulOdds(decimal.RequireFromString("2.505"))
	assert.Equal(t, "25.05", payout.String())

	// 10.01 * 2.505 = 25.075025, half-up to 25.08
	payout = MustFromString("10.01").MulOdds(decimal.RequireFromString("2.505"))
	assert.Equal(t, "25.08", payout.String())

	// 0.01 * 1.50 = 0.015, half-up to 0.02
	payout = MustFromString("0.01").MulOdds(decimal.RequireFromString("1.50"))
	assert.Equal(t, "0.02", payout.String())

	// 0.01 * 1.40 = 0.014, down to 0.01
	payout = MustFromString("0.01").MulOdds(decimal.RequireFromString("1.40"))
	assert.Equal(t, "0.01", payout.String())
}

func TestMulOdds_RoundsOnceNotTwice(t *testing.T) {
	// 3.33 * 3.333333 = 11.09999889. A single terminal rounding gives 11.10;
	// rounding an intermediate result first would drift.
	payout := MustFromString("3.33").MulOdds(decimal.RequireFromString("3.333333"))
	assert.Equal(t, "11.10", payout.String())
}

func TestSignPredicates(t *testing.T) {
	assert.True(t, MustFromString("0.01").IsPositive())
	assert.True(t, MustFromString("-0.01").IsNegative())
	assert.True(t, MustFromString("0.00").IsZero())
	assert.False(t, MustFromString("0.00").IsPositive())
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Amount Money `json:"amount"`
	}

	b, err := json.Marshal(payload{Amount: MustFromString("10.50")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"10.50"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"99.90"}`), &p))
	assert.Equal(t, "99.90", p.Amount.String())
}

func TestScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("42.42"))
	assert.Equal(t, "42.42", m.String())
}
