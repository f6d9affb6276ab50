package classifier

import (
	"strings"
)

// AdjustForTime lowers a base score for risky hours of the day: late night
// costs 20 points, evening and early morning cost 10. The result never drops
// below zero.
func AdjustForTime(score, hour int) int {
	switch {
	case hour >= 22 || hour < 6:
		score -= 20
	case (hour >= 6 && hour <= 8) || (hour >= 19 && hour < 22):
		score -= 10
	}
	if score < 0 {
		return 0
	}
	return score
}

// Weather penalty tiers, checked in order. The storm tier must run before the
// rain tier so "heavy rain" is not caught by the plain "rain" substring.
var weatherPenalties = []struct {
	keywords []string
	penalty  int
}{
	{keywords: []string{"heavy rain", "storm", "cyclone"}, penalty: 30},
	{keywords: []string{"snow", "hail"}, penalty: 25},
	{keywords: []string{"rain", "fog", "mist"}, penalty: 15},
}

// AdjustForWeather lowers a base score for hazardous weather. Matching is a
// case-insensitive substring check; the first matching tier wins. The result
// never drops below zero.
func AdjustForWeather(score int, condition string) int {
	cond := strings.ToLower(condition)
	for _, tier := range weatherPenalties {
		for _, kw := range tier.keywords {
			if strings.Contains(cond, kw) {
				score -= tier.penalty
				if score < 0 {
					return 0
				}
				return score
			}
		}
	}
	return score
}
