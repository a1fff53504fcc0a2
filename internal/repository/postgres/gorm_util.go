package postgres

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// pathPrefixScope restricts a query to rows whose image_path starts with prefix.
func pathPrefixScope(prefix string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`image_path LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%")
	}
}
