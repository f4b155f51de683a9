package field

import (
	"fmt"
	"strconv"
)

// ValidateColumn checks a proposed column name against the names already
// taken and the generator's reserved-keyword predicate. The primary key
// name "id" is always rejected; it is added to every entity implicitly.
func ValidateColumn(name string, taken map[string]bool, reserved func(string) bool) error {
	if name == "id" || taken[name] {
		return fmt.Errorf("field %q is already defined", name)
	}
	if reserved != nil && reserved(name) {
		return fmt.Errorf("name %q is a reserved word", name)
	}
	return nil
}

// ValidateType checks membership in the type vocabulary.
func ValidateType(name string) error {
	for _, t := range Types() {
		if t == name {
			return nil
		}
	}
	return fmt.Errorf("invalid type %q", name)
}

// ValidateLength parses an optional length answer. Empty input means no
// explicit length (0); anything else must be a positive integer.
func ValidateLength(answer string) (int, error) {
	if answer == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid length %q (expected a positive integer)", answer)
	}
	return n, nil
}
