package recipe

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var durationPart = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([a-z]+)`)

// ParseMinutes reads the free-text times found in recipe exports ("15 mins",
// "1 hr 20 min", "1h30m", "90") and returns whole minutes. Unit words other
// than hours and minutes are ignored.
func ParseMinutes(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n, true
	}

	var total float64
	found := false
	for _, m := range durationPart.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		switch m[2] {
		case "h", "hr", "hrs", "hour", "hours":
			total += v * 60
		case "m", "min", "mins", "minute", "minutes":
			total += v
		default:
			continue
		}
		found = true
	}
	if !found {
		return 0, false
	}
	return int(math.Round(total)), true
}
