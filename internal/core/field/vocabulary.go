package field

import "strings"

// ScalarTypes is the scalar column type vocabulary, matching the ORM's
// registered mapping types.
var ScalarTypes = []string{
	"array",
	"bigint",
	"blob",
	"boolean",
	"date",
	"datetime",
	"datetimetz",
	"decimal",
	"float",
	"guid",
	"integer",
	"json_array",
	"object",
	"simple_array",
	"smallint",
	"string",
	"text",
	"time",
}

// RelationKinds is the relation part of the vocabulary.
var RelationKinds = []string{
	ManyToManyKind,
	ManyToOneKind,
	OneToOneKind,
	OneToManyKind,
}

// Types returns the full vocabulary: scalar types plus relation kinds.
func Types() []string {
	out := make([]string, 0, len(ScalarTypes)+len(RelationKinds))
	out = append(out, ScalarTypes...)
	out = append(out, RelationKinds...)
	return out
}

// IsRelation reports whether name is one of the four relation kinds.
func IsRelation(name string) bool {
	switch name {
	case ManyToManyKind, ManyToOneKind, OneToOneKind, OneToManyKind:
		return true
	}
	return false
}

// DefaultType infers a column type from naming convention. The caller
// offers the result as a prompt default; it is never forced.
func DefaultType(column string) string {
	switch {
	case strings.HasSuffix(column, "_at"):
		return "datetime"
	case strings.HasSuffix(column, "_id"):
		return "integer"
	case strings.HasPrefix(column, "is_"), strings.HasPrefix(column, "has_"):
		return "boolean"
	default:
		return "string"
	}
}
