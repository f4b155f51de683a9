package scaffold

import "strings"

// dqlKeywords are reserved words of the query language. A field named
// after one would need escaping in every query, so the wizard rejects
// such names up front.
var dqlKeywords = map[string]bool{
	"all": true, "and": true, "any": true, "as": true, "asc": true,
	"avg": true, "between": true, "both": true, "by": true, "case": true,
	"coalesce": true, "count": true, "delete": true, "desc": true,
	"distinct": true, "else": true, "empty": true, "end": true,
	"escape": true, "exists": true, "false": true, "fetch": true,
	"from": true, "group": true, "having": true, "in": true,
	"index": true, "inner": true, "instance": true, "is": true,
	"join": true, "leading": true, "left": true, "like": true,
	"max": true, "member": true, "min": true, "new": true, "not": true,
	"null": true, "nullif": true, "of": true, "or": true, "order": true,
	"outer": true, "partial": true, "select": true, "set": true,
	"some": true, "sum": true, "then": true, "trailing": true,
	"true": true, "update": true, "when": true, "where": true,
	"with": true,
}

// IsReservedKeyword reports whether name collides with a reserved word
// of the query language. The check is case-insensitive.
func (g *Generator) IsReservedKeyword(name string) bool {
	return dqlKeywords[strings.ToLower(name)]
}
