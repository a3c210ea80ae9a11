package codereadr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const devicesXML = `<?xml version="1.0" encoding="UTF-8"?>
<xml>
  <status>1</status>
  <device id="301">
    <devicename>Front gate</devicename>
    <last_scan>2024-03-10 14:30:00</last_scan>
  </device>
  <device id="302">
    <devicename>Back gate</devicename>
  </device>
</xml>`

func TestParseResponse(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		resp, err := ParseResponse([]byte(devicesXML))
		require.NoError(t, err)
		assert.Equal(t, "xml", resp.Root().Tag)
		assert.True(t, resp.OK())
		assert.NotNil(t, resp.Document())
	})

	t.Run("no root element", func(t *testing.T) {
		_, err := ParseResponse([]byte("   "))
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("surrounding whitespace and comments", func(t *testing.T) {
		resp, err := ParseResponse([]byte("\n<!-- api -->\n<xml><status>1</status></xml>\n\n"))
		require.NoError(t, err)
		assert.True(t, resp.OK())
	})

	t.Run("multiple root elements", func(t *testing.T) {
		_, err := ParseResponse([]byte(`<status>1</status><data>x</data>`))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.ErrorIs(t, err, ErrTrailingContent)
	})

	t.Run("text after root", func(t *testing.T) {
		_, err := ParseResponse([]byte(`<xml><status>1</status></xml>garbage`))
		assert.ErrorIs(t, err, ErrTrailingContent)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := ParseResponse([]byte(`<xml attr=></xml>`))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, err.Error(), "codereadr: parsing response")
	})
}

func TestResponseNavigation(t *testing.T) {
	resp, err := ParseResponse([]byte(devicesXML))
	require.NoError(t, err)

	t.Run("text by path", func(t *testing.T) {
		assert.Equal(t, "Front gate", resp.Text("device/devicename"))
		assert.Equal(t, "Back gate", resp.Text("device[@id='302']/devicename"))
		assert.Equal(t, "", resp.Text("missing"))
	})

	t.Run("find", func(t *testing.T) {
		devices, err := resp.Find("device")
		require.NoError(t, err)
		assert.Len(t, devices, 2)
	})

	t.Run("invalid path", func(t *testing.T) {
		_, err := resp.Find("device[")
		assert.Error(t, err)
		assert.Equal(t, "", resp.Text("device["))
	})

	t.Run("time in api zone", func(t *testing.T) {
		ts, err := resp.Time("device/last_scan")
		require.NoError(t, err)

		loc, err := time.LoadLocation(APITimeZone)
		require.NoError(t, err)
		assert.True(t, time.Date(2024, 3, 10, 14, 30, 0, 0, loc).Equal(ts))
		assert.Equal(t, APITimeZone, ts.Location().String())
	})

	t.Run("missing time", func(t *testing.T) {
		_, err := resp.Time("device[@id='302']/last_scan")
		assert.Error(t, err)
	})

	t.Run("bytes round trip", func(t *testing.T) {
		out, err := resp.Bytes()
		require.NoError(t, err)
		again, err := ParseResponse(out)
		require.NoError(t, err)
		assert.Equal(t, "Front gate", again.Text("device/devicename"))
	})
}

func TestResponseStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
		message  string
	}{
		{"success", `<xml><status>1</status></xml>`, 1, ""},
		{"padded", `<xml><status> 1 </status></xml>`, 1, ""},
		{"failure with message", `<xml><status>0</status><error> Invalid API key </error></xml>`, 0, "Invalid API key"},
		{"missing", `<xml><error>oops</error></xml>`, 0, "oops"},
		{"non numeric", `<xml><status>yes</status></xml>`, 0, ""},
		{"nested status ignored", `<xml><user><status>1</status></user></xml>`, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ParseResponse([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.Status())
			assert.Equal(t, tt.message, resp.ErrorMessage())
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"1", 1},
		{"0", 0},
		{"", 0},
		{"  12 ", 12},
		{"1abc", 1},
		{"-3", -3},
		{"+4", 4},
		{"abc", 0},
		{"-", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseStatus(tt.in))
		})
	}
}

func TestLocation(t *testing.T) {
	loc, err := Location()
	require.NoError(t, err)
	assert.Equal(t, APITimeZone, loc.String())

	again, err := Location()
	require.NoError(t, err)
	assert.Same(t, loc, again)
}
