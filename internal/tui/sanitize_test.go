package tui

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Go, Python, SQL", "Go, Python, SQL"},
		{"markup stays literal", "<script>alert(1)</script>", "<script>alert(1)</script>"},
		{"CSI color stripped", "\x1b[31mdanger\x1b[0m", "danger"},
		{"cursor movement stripped", "a\x1b[2Jb", "ab"},
		{"OSC title stripped", "\x1b]0;owned\x07safe", "safe"},
		{"OSC with ST terminator", "\x1b]8;;http://x\x1b\\link", "link"},
		{"bare ESC dropped", "a\x1bb", "a"},
		{"control chars dropped", "a\x00\x08b\x7f", "ab"},
		{"newline and tab kept", "line1\n\tline2", "line1\n\tline2"},
		{"unterminated CSI", "a\x1b[12", "a"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Errorf("Sanitize(%q): got %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeAll(t *testing.T) {
	in := []string{"ok", "\x1b[31mred\x1b[0m"}
	got := SanitizeAll(in)
	if len(got) != 2 || got[0] != "ok" || got[1] != "red" {
		t.Errorf("SanitizeAll: got %v", got)
	}
}
