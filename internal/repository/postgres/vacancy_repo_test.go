package postgres

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilter(t *testing.T) {
	t.Run("Should constrain nothing but status for an empty filter", func(t *testing.T) {
		where, args := buildFilter(domain.VacancyFilter{})

		assert.Equal(t, "v.status = 'open'", where)
		assert.Empty(t, args)
	})

	t.Run("Should bind a single supplied field", func(t *testing.T) {
		where, args := buildFilter(domain.VacancyFilter{CategorySlug: "it"})

		assert.Equal(t, "v.status = 'open' AND c.slug = $1", where)
		assert.Equal(t, []interface{}{"it"}, args)
	})

	t.Run("Should AND supplied fields together", func(t *testing.T) {
		remote := true
		where, args := buildFilter(domain.VacancyFilter{CategorySlug: "it", Remote: &remote})

		assert.Equal(t, "v.status = 'open' AND c.slug = $1 AND v.is_remote = $2", where)
		assert.Equal(t, []interface{}{"it", true}, args)
	})

	t.Run("Should OR keywords across title, description and requirements", func(t *testing.T) {
		where, args := buildFilter(domain.VacancyFilter{Keywords: "golang"})

		assert.Equal(t,
			"v.status = 'open' AND (v.title ILIKE $1 OR v.description ILIKE $1 OR v.requirements ILIKE $1)",
			where)
		assert.Equal(t, []interface{}{"%golang%"}, args)
	})

	t.Run("Should keep remote false distinct from remote unset", func(t *testing.T) {
		remote := false
		where, args := buildFilter(domain.VacancyFilter{Remote: &remote})

		assert.Equal(t, "v.status = 'open' AND v.is_remote = $1", where)
		assert.Equal(t, []interface{}{false}, args)
	})

	t.Run("Should number placeholders in field order when every field is set", func(t *testing.T) {
		remote := true
		where, args := buildFilter(domain.VacancyFilter{
			Keywords:       "golang",
			CategorySlug:   "it",
			LocationCity:   "Berlin",
			EmploymentType: domain.EmploymentFullTime,
			Experience:     domain.ExperienceOneToThree,
			Remote:         &remote,
		})

		assert.Equal(t,
			"v.status = 'open'"+
				" AND (v.title ILIKE $1 OR v.description ILIKE $1 OR v.requirements ILIKE $1)"+
				" AND c.slug = $2"+
				" AND l.city ILIKE $3"+
				" AND v.employment_type = $4"+
				" AND v.experience_required = $5"+
				" AND v.is_remote = $6",
			where)
		assert.Equal(t, []interface{}{"%golang%", "it", "%Berlin%", "full_time", "1-3", true}, args)
	})
}
