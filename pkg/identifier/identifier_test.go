package identifier_test

import (
	"testing"
	"unicode/utf8"

	"github.com/arthur-debert/pkginit/pkg/identifier"
	"github.com/stretchr/testify/assert"
)

func TestMangle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already valid", "MyLib", "MyLib"},
		{"hyphen and digit", "tool-1", "tool_1"},
		{"leading digit", "1st", "_1st"},
		{"dots and spaces", "my.pkg name", "my_pkg_name"},
		{"underscores kept", "_private_", "_private_"},
		{"unicode letters kept", "Café", "Café"},
		{"only punctuation", "---", "___"},
		{"leading digit then symbol", "9-lives", "_9_lives"},
		{"emoji", "rocket🚀", "rocket_"},
		{"empty falls back", "", identifier.Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identifier.Mangle(tt.input))
		})
	}
}

func TestMangleProperties(t *testing.T) {
	inputs := []string{
		"MyLib", "tool-1", "0", "123abc", " ", "a b c", "foo/bar", "x.y.z",
		"über-pkg", "\t\n", "日本語", "٣rd", "with\x00nul", string([]byte{0xff, 0xfe}),
	}

	for _, input := range inputs {
		got := identifier.Mangle(input)

		assert.NotEmpty(t, got, "input %q", input)
		assert.True(t, identifier.IsValid(got), "Mangle(%q) = %q is not a valid identifier", input, got)
		assert.True(t, utf8.ValidString(got), "Mangle(%q) produced invalid UTF-8", input)
		assert.Equal(t, got, identifier.Mangle(input), "Mangle must be deterministic")
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, identifier.IsValid("MyLib"))
	assert.True(t, identifier.IsValid("_1"))
	assert.False(t, identifier.IsValid(""))
	assert.False(t, identifier.IsValid("1a"))
	assert.False(t, identifier.IsValid("a-b"))
}

func FuzzMangle(f *testing.F) {
	for _, seed := range []string{
		"MyLib", "tool-1", "0", "123abc", " ", "a b c", "foo/bar", "x.y.z",
		"über-pkg", "\t\n", "日本語", "٣rd", "with\x00nul", string([]byte{0xff, 0xfe}),
		"1st.pkg", "rocket🚀",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, name string) {
		if name == "" {
			t.Skip()
		}
		got := identifier.Mangle(name)
		if !identifier.IsValid(got) {
			t.Fatalf("Mangle(%q) = %q is not a valid identifier", name, got)
		}
		if again := identifier.Mangle(name); again != got {
			t.Fatalf("Mangle(%q) is not deterministic: %q then %q", name, got, again)
		}
	})
}
