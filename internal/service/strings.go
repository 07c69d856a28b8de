package service

import "strings"

// dedupe trims values and drops blanks and repeats, keeping first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func splitList(raw []string) []string {
	var parts []string
	for _, value := range raw {
		parts = append(parts, strings.Split(value, ",")...)
	}
	out := dedupe(parts)
	if len(out) == 0 {
		return nil
	}
	return out
}
