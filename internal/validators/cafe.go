package validators

import "unicode/utf8"

// Column limits of the cafes table, in characters.
var MaxLen = map[string]int{
	"name":         250,
	"map_url":      500,
	"img_url":      500,
	"location":     250,
	"seats":        250,
	"coffee_price": 250,
}

// TooLong reports the first key whose value exceeds its column limit.
func TooLong(values map[string]string) (string, bool) {
	for _, key := range []string{"name", "map_url", "img_url", "location", "seats", "coffee_price"} {
		v, ok := values[key]
		if !ok {
			continue
		}
		if utf8.RuneCountInString(v) > MaxLen[key] {
			return key, true
		}
	}
	return "", false
}
