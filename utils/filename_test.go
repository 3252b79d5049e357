package utils

import "testing"

func TestResumeFileName(t *testing.T) {
	cases := []struct {
		name     string
		fullName string
		want     string
	}{
		{"two words", "John Doe", "John_Doe_Resume.pdf"},
		{"three words", "Mary Jane Watson", "Mary_Jane_Watson_Resume.pdf"},
		{"single word", "Prince", "Prince_Resume.pdf"},
		{"empty", "", "_Resume.pdf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResumeFileName(tc.fullName)
			if got != tc.want {
				t.Errorf("ResumeFileName(%q) = %q, want %q", tc.fullName, got, tc.want)
			}
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	if got := SanitizeFileName("Ana de Armas"); got != "Ana_de_Armas" {
		t.Errorf("SanitizeFileName = %q, want Ana_de_Armas", got)
	}
}
