package domain

// missing reports whether an untyped payload field should be treated as
// absent. Payload fields arrive as `any` straight from JSON decoding, so a
// zero/empty/false value counts the same as a missing key.
func missing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0
	}
	return false
}
