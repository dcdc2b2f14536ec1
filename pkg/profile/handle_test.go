package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain handle", "nasa", "nasa"},
		{"leading at", "@nasa", "nasa"},
		{"surrounding whitespace", "  nasa  ", "nasa"},
		{"at plus whitespace", " @nasa ", "nasa"},
		{"whitespace after at", "@ nasa", "nasa"},
		{"underscore and digits", "@user_42", "user_42"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"nasa", "@nasa", "  @user_42  ", "", "_"}
	for _, raw := range inputs {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once), "normalize(normalize(%q))", raw)
	}
}

func TestValidate(t *testing.T) {
	valid := []string{"a", "nasa", "user_42", "A1_b2", "_____",
		"abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWX"} // 50 chars
	for _, handle := range valid {
		assert.NoError(t, Validate(handle), "handle %q", handle)
	}

	invalid := []string{"", "user name", "user-name", "user.name", "@nasa",
		"ûser", "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXY"} // 51 chars
	for _, handle := range invalid {
		assert.Error(t, Validate(handle), "handle %q", handle)
	}
}

func TestProfileURLs(t *testing.T) {
	urls := TimelineURLs("nasa")
	require.Len(t, urls, 2)
	assert.Equal(t, "https://twitter.com/nasa", urls[0])
	assert.Equal(t, "https://x.com/nasa", urls[1])

	assert.Equal(t, "https://x.com/nasa/media", MediaURL("nasa"))
}
