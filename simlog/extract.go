package simlog

// Extract runs DefaultRules over raw log text. Every metric in MetricOrder
// is present in the result; metrics whose patterns did not match are NaN.
func Extract(text string) Metrics {
	return ExtractWith(DefaultRules, text)
}

// ExtractWith runs an explicit rule set, letting a single rule be exercised
// in isolation.
func ExtractWith(rules []Rule, text string) Metrics {
	m := make(Metrics, len(rules))
	for _, r := range rules {
		m[r.Metric] = r.Apply(text)
	}
	return m
}
