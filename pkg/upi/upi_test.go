package upi

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayURI(t *testing.T) {
	uri, err := BuildPayURI(PayParams{
		PayeeVPA:  "6203984648@ybl",
		PayeeName: "PersonalCoach",
		Amount:    99,
		Note:      "SessionBooking",
		Reference: 1000,
	})
	require.NoError(t, err)

	assert.Equal(t, "upi://pay?pa=6203984648%40ybl&pn=PersonalCoach&am=99&tn=SessionBooking&tr=1000", uri)
}

func TestBuildPayURI_RoundTrip(t *testing.T) {
	params := PayParams{
		PayeeVPA:  "coach@upi",
		PayeeName: "Coach & Co",
		Amount:    149.5,
		Note:      "Session Booking",
		Reference: 1756543210123,
	}

	uri, err := BuildPayURI(params)
	require.NoError(t, err)

	parsed, err := url.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, "upi", parsed.Scheme)

	q := parsed.Query()
	assert.Equal(t, params.PayeeVPA, q.Get("pa"))
	assert.Equal(t, params.PayeeName, q.Get("pn"))
	assert.Equal(t, "149.5", q.Get("am"))
	assert.Equal(t, params.Note, q.Get("tn"))
	assert.Equal(t, "1756543210123", q.Get("tr"))
}

func TestBuildPayURI_Validation(t *testing.T) {
	_, err := BuildPayURI(PayParams{Reference: 1})
	require.ErrorIs(t, err, ErrEmptyPayeeVPA)

	_, err = BuildPayURI(PayParams{PayeeVPA: "coach@upi"})
	require.ErrorIs(t, err, ErrInvalidReference)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "99", FormatAmount(99))
	assert.Equal(t, "149.5", FormatAmount(149.5))
	assert.Equal(t, "99.99", FormatAmount(99.99))
	assert.Equal(t, "0", FormatAmount(0))
}
