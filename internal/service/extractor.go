package service

import (
	"regexp"
	"strings"

	"github.com/hardeep652/sihhackathon/internal/model"
)

// yearPattern matches a 4-digit year starting with "20", optionally with a
// 2-digit range suffix, e.g. "2020" or "2020-21".
var yearPattern = regexp.MustCompile(`20\d{2}(?:-\d{2})?`)

// ExtractEntities scans a free-text query for a year token and a district
// name. Year is the first left-to-right pattern match. District is the
// first name from the table-ordered district list contained in the
// upper-cased query as a plain substring; a shorter name that is a
// substring of a longer one therefore shadows it depending on table order,
// which is deliberate. No fuzzy or tokenized matching.
func ExtractEntities(query string, districts []string) model.ExtractedEntities {
	q := strings.ToUpper(query)

	entities := model.ExtractedEntities{
		Year: yearPattern.FindString(q),
	}

	for _, d := range districts {
		if d != "" && strings.Contains(q, d) {
			entities.District = d
			break
		}
	}
	return entities
}
