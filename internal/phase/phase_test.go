package phase

import "testing"

func TestStripDEL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"abc", "abc"},
		{"a\x7Fbc", "abc"},
		{"\x7F\x7F", ""},
		{"", ""},
	}
	for _, c := range cases {
		got := StripDEL([]byte(c.in))
		if string(got) != c.want {
			t.Errorf("StripDEL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSpliceBackslashNewline(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"abc", "abc"},
		{"ab\\\nc", "abc"},
		{"a\\\n\\\nb", "ab"},
		{"a\\b", "a\\b"},    // backslash not before newline is kept
		{"a\\", "a\\"},      // trailing backslash with nothing after is kept
	}
	for _, c := range cases {
		got := SpliceBackslashNewline([]byte(c.in))
		if string(got) != c.want {
			t.Errorf("SpliceBackslashNewline(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
