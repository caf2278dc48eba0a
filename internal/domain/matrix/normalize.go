package matrix

import (
	"strconv"
	"strings"
	"unicode"
)

// NormalizeTitle collapses internal whitespace runs to single spaces and
// trims the ends. Two titles differing only in whitespace identify the same
// entity everywhere in the service.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}

// LabelFromKey derives a display label from a competency key: underscores
// become spaces and each word is title-cased, so "team_coaching" reads
// "Team Coaching".
func LabelFromKey(key string) string {
	runes := []rune(strings.ReplaceAll(key, "_", " "))
	startWord := true
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			startWord = true
			continue
		}
		if startWord {
			runes[i] = unicode.ToUpper(r)
			startWord = false
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}

// ResolveRef extracts the key and display label from one competency
// reference. Bare strings are their own key; object references try
// key/id/name for the key and label/name for the label, deriving the label
// from the key when absent. ok is false when no key can be resolved, in
// which case the reference is dropped from query output.
func ResolveRef(ref any) (key, label string, ok bool) {
	switch v := ref.(type) {
	case string:
		if v == "" {
			return "", "", false
		}
		return v, LabelFromKey(v), true
	case map[string]any:
		key = firstString(v, "key", "id", "name")
		if key == "" {
			return "", "", false
		}
		label = firstString(v, "label", "name")
		if label == "" {
			label = LabelFromKey(key)
		}
		return key, label, true
	default:
		return "", "", false
	}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// CoerceString renders a decoded JSON scalar the way level values are keyed:
// numbers without a spurious exponent or trailing zero fraction, booleans as
// true/false, nil as empty.
func CoerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
