package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	seconds := func(i int64) *int64 { return &i }

	testCases := []struct {
		Name     string
		Input    *int64
		Expected string
	}{
		{Name: "absent", Input: nil, Expected: "N/A"},
		{Name: "zero", Input: seconds(0), Expected: "00:00:00"},
		{Name: "two and a half hours", Input: seconds(9000), Expected: "02:30:00"},
		{Name: "odd seconds", Input: seconds(3725), Expected: "01:02:05"},
		{Name: "more than a day", Input: seconds(90061), Expected: "25:01:01"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, FormatSeconds(tc.Input))
		})
	}
}

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Expected int64
		Err      bool
	}{
		{Name: "hours and minutes", Input: "2h30m", Expected: 9000},
		{Name: "minutes only", Input: "150m", Expected: 9000},
		{Name: "seconds only", Input: "9000s", Expected: 9000},
		{Name: "all components", Input: "1h1m1s", Expected: 3661},
		{Name: "hours only", Input: "8h", Expected: 28800},
		{Name: "empty", Input: "", Err: true},
		{Name: "wrong order", Input: "30m2h", Err: true},
		{Name: "unit missing", Input: "90", Err: true},
		{Name: "garbage", Input: "two hours", Err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := ParseDuration(tc.Input)
			if tc.Err {
				assert.ErrorIs(t, err, ErrInvalidDuration)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestDurationRoundTrip(t *testing.T) {
	for _, s := range []string{"2h30m", "45m", "1h", "59s", "10h0m5s"} {
		secs, err := ParseDuration(s)
		assert.NoError(t, err)

		back, err := ParseDuration(
			FormatSeconds(&secs)[0:2] + "h" +
				FormatSeconds(&secs)[3:5] + "m" +
				FormatSeconds(&secs)[6:8] + "s",
		)
		assert.NoError(t, err)
		assert.Equal(t, secs, back, s)
	}
}
