package mediainfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// CoerceTestSuite defines a test suite for the text-to-typed-value
// coercion helpers.
type CoerceTestSuite struct {
	suite.Suite
}

// TestNumericPrefix tests that unit suffixes are trimmed before parsing.
func (s *CoerceTestSuite) TestNumericPrefix() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain_integer",
			input:    "1500000",
			expected: "1500000",
		},
		{
			name:     "frame_rate_with_unit",
			input:    "24.000 fps",
			expected: "24.000",
		},
		{
			name:     "bit_rate_with_unit",
			input:    "128000 bps",
			expected: "128000",
		},
		{
			name:     "negative",
			input:    "-90 degrees",
			expected: "-90",
		},
		{
			name:     "leading_whitespace",
			input:    "  42",
			expected: "42",
		},
		{
			name:     "id_with_hex_rendering",
			input:    "189 (0xBD)",
			expected: "189",
		},
		{
			name:     "no_number",
			input:    "VBR",
			expected: "",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "bare_sign",
			input:    "-",
			expected: "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			assert.Equal(s.T(), tc.expected, numericPrefix(tc.input))
		})
	}
}

// TestParseBool tests that exactly "Yes" coerces to true.
func (s *CoerceTestSuite) TestParseBool() {
	s.True(parseBool("Yes"))
	s.True(parseBool("yes"))
	s.True(parseBool(" Yes "))
	s.False(parseBool("No"))
	s.False(parseBool("no"))
	s.False(parseBool("1"))
	s.False(parseBool("true"))
	s.False(parseBool(""))
}

// TestParseInt64 tests integer coercion including fractional truncation.
func (s *CoerceTestSuite) TestParseInt64() {
	testCases := []struct {
		name     string
		input    string
		expected int64
		ok       bool
	}{
		{
			name:     "plain",
			input:    "1234567",
			expected: 1234567,
			ok:       true,
		},
		{
			name:     "unit_suffix",
			input:    "48000 Hz",
			expected: 48000,
			ok:       true,
		},
		{
			name:     "fractional_truncates",
			input:    "24.97",
			expected: 24,
			ok:       true,
		},
		{
			name:     "multi_value_first_wins",
			input:    "8 / 6",
			expected: 8,
			ok:       true,
		},
		{
			name:  "non_numeric",
			input: "CBR",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			n, ok := parseInt64(tc.input)
			assert.Equal(s.T(), tc.ok, ok)
			assert.Equal(s.T(), tc.expected, n)
		})
	}
}

// TestParseFloat tests float coercion with unit trimming.
func (s *CoerceTestSuite) TestParseFloat() {
	f, ok := parseFloat("23.976 fps")
	s.True(ok)
	s.InDelta(23.976, f, 0.0001)

	f, ok = parseFloat("1.778")
	s.True(ok)
	s.InDelta(1.778, f, 0.0001)

	_, ok = parseFloat("Progressive")
	s.False(ok)
}

// TestParseBigInt tests coercion of values that overflow int64.
func (s *CoerceTestSuite) TestParseBigInt() {
	n, ok := parseBigInt("203902186524291758386621404849666670557")
	s.True(ok)
	s.Equal("203902186524291758386621404849666670557", n.String())

	n, ok = parseBigInt("42")
	s.True(ok)
	s.Equal("42", n.String())

	_, ok = parseBigInt("not an id")
	s.False(ok)
}

// TestParseDurationMillis tests that durations are read as milliseconds.
func (s *CoerceTestSuite) TestParseDurationMillis() {
	d, ok := parseDurationMillis("5400000")
	s.True(ok)
	s.Equal(90*time.Minute, d)

	d, ok = parseDurationMillis("1500.5")
	s.True(ok)
	s.Equal(1500500*time.Microsecond, d)

	_, ok = parseDurationMillis("")
	s.False(ok)
}

// TestParseClockDuration tests the clock-style offsets used by menu
// chapter positions.
func (s *CoerceTestSuite) TestParseClockDuration() {
	testCases := []struct {
		name     string
		input    string
		expected time.Duration
		ok       bool
	}{
		{
			name:     "hours_minutes_seconds",
			input:    "01:02:03.500",
			expected: time.Hour + 2*time.Minute + 3500*time.Millisecond,
			ok:       true,
		},
		{
			name:     "minutes_seconds",
			input:    "02:30",
			expected: 2*time.Minute + 30*time.Second,
			ok:       true,
		},
		{
			name:     "zero",
			input:    "00:00:00.000",
			expected: 0,
			ok:       true,
		},
		{
			name:  "not_a_clock",
			input: "Opening",
			ok:    false,
		},
		{
			name:  "single_field",
			input: "42",
			ok:    false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			d, ok := parseClockDuration(tc.input)
			assert.Equal(s.T(), tc.ok, ok)
			assert.Equal(s.T(), tc.expected, d)
		})
	}
}

// TestParseTime tests the date shapes the library emits.
func (s *CoerceTestSuite) TestParseTime() {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{
			name:     "utc_prefixed",
			input:    "UTC 2024-03-01 12:00:00",
			expected: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "plain_datetime",
			input:    "2024-03-01 12:00:00",
			expected: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "date_only",
			input:    "2024-03-01",
			expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "iso8601",
			input:    "2024-03-01T12:00:00Z",
			expected: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:  "garbage",
			input: "last tuesday",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t, ok := parseTime(tc.input)
			assert.Equal(s.T(), tc.ok, ok)
			if tc.ok {
				assert.True(s.T(), tc.expected.Equal(t), "expected %v, got %v", tc.expected, t)
			}
		})
	}
}

// TestParseURL tests URL coercion.
func (s *CoerceTestSuite) TestParseURL() {
	u := parseURL("https://www.itu.int/rec/T-REC-H.264")
	s.NotNil(u)
	s.Equal("www.itu.int", u.Host)

	s.Nil(parseURL(""))
	s.Nil(parseURL("   "))
}

// TestSplitList tests the slash-separated multi-stream lists.
func (s *CoerceTestSuite) TestSplitList() {
	s.Equal([]string{"AAC", "AC-3"}, splitList("AAC / AC-3"))
	s.Equal([]string{"English"}, splitList("English"))
	s.Nil(splitList(""))
	s.Nil(splitList("   "))
}

// TestSplitExtensions tests the space-separated extension lists.
func (s *CoerceTestSuite) TestSplitExtensions() {
	s.Equal([]string{"mkv", "mk3d", "mka", "mks"}, splitExtensions("mkv mk3d mka mks"))
	s.Empty(splitExtensions(""))
}

// TestCoerceTestSuite runs the test suite.
func TestCoerceTestSuite(t *testing.T) {
	suite.Run(t, new(CoerceTestSuite))
}
