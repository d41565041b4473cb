package problemid

import "strings"

// Normalize canonicalizes problem names and reference aliases.
func Normalize(name string) string {
	normalized := strings.TrimSpace(strings.ToLower(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.Trim(normalized, "-")
	if normalized == "" {
		return ""
	}
	if canonical, ok := canonicalProblemName(normalized); ok {
		return canonical
	}
	return normalized
}

func canonicalProblemName(alias string) (string, bool) {
	switch alias {
	case "neutral":
		return "neutral", true
	case "binary-multiply":
		return "binary-multiply", true
	case "breadth":
		return "breadth", true
	case "depth":
		return "depth", true
	case "flat":
		return "flat", true
	case "active":
		return "active", true
	}

	compact := strings.ReplaceAll(alias, "-", "")
	switch compact {
	case "neutral":
		return "neutral", true
	case "binarymultiply", "multiply", "binarymultiplier", "mult":
		return "binary-multiply", true
	case "breadth":
		return "breadth", true
	case "depth":
		return "depth", true
	case "flat":
		return "flat", true
	case "active":
		return "active", true
	default:
		return "", false
	}
}
