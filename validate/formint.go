package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// FormInt is an int that also accepts numeric strings when decoding JSON,
// matching what browser form submissions send ("3" instead of 3).
// Non-numeric input is rejected at decode time.
type FormInt int

func (n *FormInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("validate: malformed quoted number %s", s)
		}
		s = unquoted
	}
	if s == "" {
		return fmt.Errorf("validate: empty numeric value")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("validate: %q is not a whole number", s)
	}
	*n = FormInt(v)
	return nil
}

// Int returns the underlying value.
func (n FormInt) Int() int { return int(n) }
