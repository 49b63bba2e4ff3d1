package taxengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	newer := RegimeResult{Regime: RegimeNew, Label: NewSchedule.Label, FinalLiability: d("192400")}
	older := RegimeResult{Regime: RegimeOld, Label: OldSchedule.Label, FinalLiability: d("278200")}

	c := Compare(newer, older)
	assert.Equal(t, WinnerNew, c.Winner)
	assertDecimal(t, "85800", c.Savings)
	assert.Equal(t,
		"Latest New Tax Regime (FY 2025-2026) will save you ₹85,800 compared to the Existing New Tax Regime.",
		c.Message)

	c = Compare(older, newer)
	assert.Equal(t, WinnerOld, c.Winner)
	assertDecimal(t, "85800", c.Savings)

	older.Label = OldSchedule.Label
	newer.FinalLiability = d("300000")
	c = Compare(newer, older)
	assert.Equal(t, WinnerOld, c.Winner)
	assertDecimal(t, "21800", c.Savings)
	assert.Contains(t, c.Message, "Existing New Tax Regime (FY 2024-2025) will save you")
	assert.Contains(t, c.Message, "compared to the Latest New Tax Regime.")
}

func TestCompareTie(t *testing.T) {
	a := RegimeResult{Regime: RegimeNew, FinalLiability: d("0.1").Add(d("0.2"))}
	b := RegimeResult{Regime: RegimeOld, FinalLiability: d("0.3")}
	c := Compare(a, b)
	assert.Equal(t, WinnerTie, c.Winner)
	assert.True(t, c.Savings.IsZero())
	assert.Equal(t, "Both methods yield the same final tax liability.", c.Message)
}
