package youchat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareQueryEscapesReservedCharacters(t *testing.T) {
	c := New()

	// One input exercising all thirteen substitutions.
	in := `a b?c&d"e'f,g;h:i/j\k|l=m+n`
	want := `a%20b%3Fc%26d%22e%27f%2Cg%3Bh%3Ai%2Fj%5Ck%7Cl%3Dm%2Bn`
	assert.Equal(t, want, c.PrepareQuery(in), "expected every reserved character to be escaped")
}

func TestPrepareQueryLeavesOtherCharactersAlone(t *testing.T) {
	c := New()

	// Characters a general-purpose URL encoder would touch stay as-is here.
	in := "100% #1 ~ café 東京\n"
	assert.Equal(t, "100%%20#1%20~%20café%20東京\n", c.PrepareQuery(in), "only the fixed character set should be escaped")
}

func TestPrepareQueryIsIdempotent(t *testing.T) {
	c := New()

	once := c.PrepareQuery(`rain today? bring an umbrella, or a coat/hat`)
	assert.Equal(t, once, c.PrepareQuery(once), "escaping already-escaped text should change nothing")

	// Pre-escaped input never doubles because '%' is not in the table.
	assert.Equal(t, "%20%3F", c.PrepareQuery("%20%3F"), "expected pre-escaped sequences to pass through")
}

func TestPrepareQueryAQIExample(t *testing.T) {
	c := New()

	got := c.PrepareQuery("What is current AQI in New Delhi?")
	assert.Equal(t, "What%20is%20current%20AQI%20in%20New%20Delhi%3F", got, "expected spaces and the question mark to be escaped")
}
