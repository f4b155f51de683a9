package scaffold

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/example/entforge/internal/core/field"
)

// fieldToken matches one batch field token: name, name:type or
// name:type(length). A single pattern with a parenthesis capture keeps
// the grammar in one place.
var fieldToken = regexp.MustCompile(`^(?P<column>[^:(\s]+)(?::(?P<type>[^(\s]+)(?:\((?P<length>\d+)\))?)?$`)

// ParseFields parses the --fields value into a specification in one
// pass. Format: "title:string(100) body:text rating:integer". An
// omitted type defaults to "string".
//
// Batch mode deliberately applies none of the interactive validation:
// names are taken as-is (no camel-casing, no reserved-word check, first
// occurrence wins on duplicates) and unknown types pass through to the
// generator unchecked. Relation kinds are not supported here; use the
// interactive wizard for relations.
func ParseFields(input string) *field.Spec {
	spec := field.NewSpec()
	for _, token := range strings.Fields(input) {
		m := fieldToken.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		column, typeName, rawLength := m[1], m[2], m[3]
		if typeName == "" {
			typeName = "string"
		}
		length, _ := strconv.Atoi(rawLength) // empty capture -> 0
		_ = spec.Add(field.Descriptor{
			Column: column,
			Field:  column,
			Spec:   field.Scalar{Type: typeName, Length: length},
		})
	}
	return spec
}
