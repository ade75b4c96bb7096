package resume

import "testing"

func TestAcceptsFilename(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"resume.pdf", true},
		{"Resume.PDF", true},
		{"cv.Pdf", true},
		{"resume.docx", false},
		{"resume.pdf.txt", false},
		{"pdf", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := AcceptsFilename(tc.name); got != tc.want {
			t.Errorf("AcceptsFilename(%q): got %v, want %v", tc.name, got, tc.want)
		}
	}
}
