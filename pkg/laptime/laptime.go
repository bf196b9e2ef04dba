// Package laptime converts between lap time text and seconds.
package laptime

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// "MM:SS.sss" with optional minutes, 1-2 digit seconds, optional fraction
	clockPattern  = regexp.MustCompile(`^(?:(\d+):)?(\d{1,2}(?:\.\d+)?)$`)
	numberPattern = regexp.MustCompile(`\d+\.?\d*`)
)

// Parse converts lap time text into seconds. The second return value is
// false when the text is empty or not recognized; Parse never fails hard.
//
// Accepted shapes: "01:39.289", "39.2", "99" and, as a fallback, any text
// containing exactly one numeric substring (taken as seconds).
func Parse(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	if m := clockPattern.FindStringSubmatch(s); m != nil {
		minutes := 0
		if m[1] != "" {
			minutes, _ = strconv.Atoi(m[1])
		}
		seconds, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, false
		}
		return float64(minutes)*60 + seconds, true
	}
	nums := numberPattern.FindAllString(s, -1)
	if len(nums) == 1 {
		if v, err := strconv.ParseFloat(nums[0], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// Format renders seconds as zero padded "MM:SS" with either 1 or 3
// fractional digits on the seconds part. Any other decimals value renders
// 3 digits. Format inverts Parse for clock-shaped inputs:
// 99.289 -> "01:39.289".
func Format(seconds float64, decimals int) string {
	minutes := int(math.Floor(seconds / 60))
	remainder := math.Mod(seconds, 60)
	if decimals == 1 {
		return fmt.Sprintf("%02d:%04.1f", minutes, remainder)
	}
	return fmt.Sprintf("%02d:%06.3f", minutes, remainder)
}
