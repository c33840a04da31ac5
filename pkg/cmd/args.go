package cmd

// Args holds a command's bound, typed argument set, keyed by parameter name.
// The getters return zero values for absent or nil entries, so optional
// parameters without a default read as "", 0 or false.
type Args map[string]any

// Get returns the raw bound value.
func (a Args) Get(name string) any { return a[name] }

// String returns the value bound to name as a string.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Int returns the value bound to name as an int64. Decimal-parsed and
// plain-int defaults are converted.
func (a Args) Int(name string) int64 {
	switch v := a[name].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// Float returns the value bound to name as a float64.
func (a Args) Float(name string) float64 {
	switch v := a[name].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

// Bool returns the value bound to name as a bool.
func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// Strings returns the values of a multiple string parameter in order.
func (a Args) Strings(name string) []string {
	vals, ok := a[name].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Ints returns the values of a multiple integer parameter in order.
func (a Args) Ints(name string) []int64 {
	vals, ok := a[name].([]any)
	if !ok {
		return nil
	}
	out := make([]int64, 0, len(vals))
	for _, v := range vals {
		switch n := v.(type) {
		case int64:
			out = append(out, n)
		case int:
			out = append(out, int64(n))
		case float64:
			out = append(out, int64(n))
		}
	}
	return out
}
