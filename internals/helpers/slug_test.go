package helper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "API Basics", "api-basics"},
		{"ampersand", "Tips & Tricks", "tips-and-tricks"},
		{"punctuation stripped", "Selenium (Java)!", "selenium-java"},
		{"diacritics", "Sécurité Testing", "securite-testing"},
		{"already slug", "robot-framework", "robot-framework"},
		{"surrounding space", "  QA Fundamentals  ", "qa-fundamentals"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.in))
		})
	}
}

func TestGenerateCertificateCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateCertificateCode()
		assert.Regexp(t, pattern, code)
		seen[code] = true
	}
	// 100 draws from a 16^8 space colliding would mean a broken generator.
	assert.Greater(t, len(seen), 95)
}
