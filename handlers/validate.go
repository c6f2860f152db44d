package handlers

// missingAny reports whether any required value is absent. Empty strings and
// zero numbers both count as missing; each create route declares its required
// fields once instead of repeating per-field checks inline.
func missingAny(vals ...any) bool {
	for _, v := range vals {
		switch t := v.(type) {
		case string:
			if t == "" {
				return true
			}
		case int64:
			if t == 0 {
				return true
			}
		case int:
			if t == 0 {
				return true
			}
		}
	}
	return false
}
