package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiblingChecks(t *testing.T) {
	tests := []struct {
		name    string
		check   Check
		raw     string
		wantMsg string
	}{
		{name: "Leading digit", check: LeadingCharacter{}, raw: "1FOO=BAR", wantMsg: "Invalid leading character detected"},
		{name: "Leading star", check: LeadingCharacter{}, raw: "*FOO=BAR", wantMsg: "Invalid leading character detected"},
		{name: "Leading underscore", check: LeadingCharacter{}, raw: "_FOO=BAR"},
		{name: "Leading comment", check: LeadingCharacter{}, raw: "# comment"},
		{name: "Missing equal sign", check: KeyWithoutValue{}, raw: "FOO", wantMsg: "The FOO key should be with a value or have an equal sign"},
		{name: "Empty value", check: KeyWithoutValue{}, raw: "FOO="},
		{name: "Blank line", check: KeyWithoutValue{}, raw: "   "},
		{name: "Space before equal sign", check: SpaceCharacter{}, raw: "FOO =BAR", wantMsg: "The line has spaces around equal sign"},
		{name: "Space after equal sign", check: SpaceCharacter{}, raw: "FOO= BAR", wantMsg: "The line has spaces around equal sign"},
		{name: "Whitespace only value", check: SpaceCharacter{}, raw: "FOO= "},
		{name: "Inner key space", check: SpaceCharacter{}, raw: "FOO BAR=1"},
		{name: "Lowercase key", check: LowercaseKey{}, raw: "foo_Bar=1", wantMsg: "The foo_Bar key should be in uppercase"},
		{name: "Lowercase value", check: LowercaseKey{}, raw: "FOO=bar"},
		{name: "Trailing tab", check: TrailingWhitespace{}, raw: "FOO=BAR\t", wantMsg: "Trailing whitespace detected"},
		{name: "No trailing whitespace", check: TrailingWhitespace{}, raw: "FOO=BAR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := newLine(tt.raw)
			got := tt.check.Run(line)
			if tt.wantMsg == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.check.Name(), got.CheckName)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.Equal(t, line, got.Line)
		})
	}
}

// Each malformed line must be reported by exactly the checks owning its problems.
func TestChecksDoNotOverlap(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "FOO_BAR=1", want: nil},
		{raw: "*FOO=1", want: []string{"LeadingCharacter"}},
		{raw: "***F-OOBAR=1", want: []string{"IncorrectDelimiter", "LeadingCharacter"}},
		{raw: "FOO-BAR", want: []string{"KeyWithoutValue"}},
		{raw: "FOO_BAR =1", want: []string{"SpaceCharacter"}},
		{raw: "FOO BAR=1", want: []string{"IncorrectDelimiter"}},
		{raw: "FOO= ", want: []string{"TrailingWhitespace"}},
		{raw: "1FOO=1", want: []string{"LeadingCharacter"}},
		{raw: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var got []string
			for _, c := range All() {
				if w := c.Run(newLine(tt.raw)); w != nil {
					got = append(got, w.CheckName)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter(t *testing.T) {
	filtered, err := Filter(All(), []string{"LowercaseKey", "TrailingWhitespace"})
	require.NoError(t, err)
	assert.Len(t, filtered, len(All())-2)
	for _, c := range filtered {
		assert.NotEqual(t, "LowercaseKey", c.Name())
		assert.NotEqual(t, "TrailingWhitespace", c.Name())
	}

	_, err = Filter(All(), []string{"NoSuchCheck"})
	assert.EqualError(t, err, `unknown check "NoSuchCheck"`)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"IncorrectDelimiter",
		"KeyWithoutValue",
		"LeadingCharacter",
		"LowercaseKey",
		"SpaceCharacter",
		"TrailingWhitespace",
	}, Names())
	assert.True(t, IsKnown("IncorrectDelimiter"))
	assert.False(t, IsKnown("incorrectdelimiter"))
}

func TestWarningString(t *testing.T) {
	w := NewWarning(newLine("FOO-BAR=1"), "IncorrectDelimiter", "The FOO-BAR key has incorrect delimiter")
	assert.Equal(t, ".env:1 IncorrectDelimiter: The FOO-BAR key has incorrect delimiter", w.String())
}
