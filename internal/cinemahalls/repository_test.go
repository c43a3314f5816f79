package cinemahalls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements against the postgres dialect without connecting.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=cinepulse dbname=cinepulse sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"zoom", "zoom"},
		{"50%", `50\%`},
		{"hall_1", `hall\_1`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.input))
		})
	}
}

func TestNameContainsQuery(t *testing.T) {
	db := dryRunDB(t)

	tests := []struct {
		name      string
		substring string
		want      string
	}{
		{"lower-cases input", "ZoOm", `LOWER(name) LIKE '%zoom%' ESCAPE '\'`},
		{"percent is literal", "50%", `LOWER(name) LIKE '%50\%%' ESCAPE '\'`},
		{"underscore is literal", "Audi_1", `LOWER(name) LIKE '%audi\_1%' ESCAPE '\'`},
		{"backslash is literal", `a\b`, `LOWER(name) LIKE '%a\\b%' ESCAPE '\'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				var halls []CinemaHall
				return tx.Scopes(nameContains(tt.substring)).Order("cinema_hall_id ASC").Find(&halls)
			})

			assert.Contains(t, sql, `FROM "cinema_halls"`)
			assert.Contains(t, sql, tt.want)
		})
	}
}
