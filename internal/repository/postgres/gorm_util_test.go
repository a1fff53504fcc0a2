package postgres

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "7/b1-x/", want: "7/b1-x/"},
		{in: "7/b_1/", want: `7/b\_1/`},
		{in: "7/100%/", want: `7/100\%/`},
		{in: `7/a\b/`, want: `7/a\\b/`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}

// dryRunDB renders SQL without a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=gallery dbname=gallery sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

// likeMatches evaluates a LIKE pattern using backslash as the escape character.
func likeMatches(pattern, s string) bool {
	var re strings.Builder
	re.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '\\' && i+1 < len(pattern):
			i++
			re.WriteString(regexp.QuoteMeta(string(pattern[i])))
		case c == '%':
			re.WriteString(".*")
		case c == '_':
			re.WriteString(".")
		default:
			re.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	re.WriteString("$")
	return regexp.MustCompile(re.String()).MatchString(s)
}

func TestPathPrefixScope_Select(t *testing.T) {
	// Arrange
	db := dryRunDB(t)

	// Act
	stmt := db.Model(&domain.Submission{}).
		Scopes(pathPrefixScope("7/b1-x/")).
		Find(&[]domain.Submission{}).Statement

	// Assert
	assert.Contains(t, stmt.SQL.String(), `image_path LIKE $1 ESCAPE '\'`)
	require.Equal(t, []any{"7/b1-x/%"}, stmt.Vars)
}

func TestPathPrefixScope_Delete(t *testing.T) {
	// Arrange
	db := dryRunDB(t)

	// Act
	stmt := db.Scopes(pathPrefixScope("7/b_1/")).Delete(&domain.Submission{}).Statement

	// Assert
	assert.Contains(t, stmt.SQL.String(), `DELETE FROM "submissions" WHERE image_path LIKE $1 ESCAPE '\'`)
	require.Equal(t, []any{`7/b\_1/%`}, stmt.Vars)
}

func TestPathPrefixScope_MatchesOnlyTheGroup(t *testing.T) {
	db := dryRunDB(t)
	stmt := db.Model(&domain.Submission{}).
		Scopes(pathPrefixScope("7/b1-x/")).
		Find(&[]domain.Submission{}).Statement
	require.Len(t, stmt.Vars, 1)
	pattern := stmt.Vars[0].(string)

	tests := []struct {
		path string
		want bool
	}{
		{path: "7/b1-x/1.jpg", want: true},
		{path: "7/b1-x/2.jpg", want: true},
		{path: "7/b1-x-extra/1.jpg", want: false},
		{path: "7/b1-xy/1.jpg", want: false},
		{path: "7/legacy.jpg", want: false},
		{path: "17/b1-x/1.jpg", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, likeMatches(pattern, tt.path))
		})
	}

	// an unescaped underscore would let b_1 match b21
	assert.False(t, likeMatches(escapeLike("7/b_1/")+"%", "7/b21/1.jpg"))
}
