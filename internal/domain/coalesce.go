package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// IntWithDefault returns v when positive, otherwise the fallback.
func IntWithDefault(fallback, v int) int {
	if v > 0 {
		return v
	}
	return fallback
}
