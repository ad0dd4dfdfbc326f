package slug_test

import (
	"regexp"
	"testing"
	"time"

	"go-jobboard-backend/pkg/slug"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Go Developer":           "go-developer",
		"  C++ / Rust Engineer ": "c-rust-engineer",
		"ALL CAPS":               "all-caps",
		"already-a-slug":         "already-a-slug",
		"trailing punctuation!!": "trailing-punctuation",
		"":                       "",
	}
	for input, want := range cases {
		assert.Equal(t, want, slug.Make(input), "input %q", input)
	}
}

func TestForVacancy(t *testing.T) {
	t.Run("Should embed title, company, date and a random token", func(t *testing.T) {
		s := slug.ForVacancy("Go Developer", "Acme Corp")
		today := time.Now().Format("20060102")

		pattern := regexp.MustCompile(`^go-developer-acme-corp-` + today + `-[0-9a-f]{8}$`)
		assert.Regexp(t, pattern, s)
	})

	t.Run("Should produce distinct slugs for identical input", func(t *testing.T) {
		a := slug.ForVacancy("Go Developer", "Acme Corp")
		b := slug.ForVacancy("Go Developer", "Acme Corp")
		assert.NotEqual(t, a, b)
	})
}

func TestForProfile(t *testing.T) {
	assert.Equal(t, "jane-doe-42", slug.ForProfile("Jane Doe", 42))
	assert.Equal(t, "acme-corp-7", slug.ForProfile("Acme Corp", 7))
}
