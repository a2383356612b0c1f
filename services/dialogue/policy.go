// File: services/dialogue/policy.go
package dialogue

import "dinebot/models"

// Named ambiguity-resolution policies. Both are deliberate product decisions
// carried over from the shipped behavior; tests pin them so any future change
// is explicit.

// assumeEveningHour reads a bare 1-11 hour with no AM/PM marker as evening
// when it is 6 or later: diners saying "at 7" almost always mean 19:00.
func assumeEveningHour(hour int) int {
	if hour >= 6 && hour <= 11 {
		return hour + 12
	}
	return hour
}

// defaultRestaurant is used when a reservation reaches confirmation without a
// restaurant: the first known restaurant is assumed.
func defaultRestaurant(restaurants []models.Restaurant) *models.Restaurant {
	if len(restaurants) == 0 {
		return nil
	}
	return &restaurants[0]
}

// Business rules shared by validation and the alternate-slot scan.
const (
	MinPartySize = 1
	MaxPartySize = 12

	OpeningTime = "11:00"
	ClosingTime = "22:00"
)

// withinBusinessHours reports whether an HH:MM time falls inside opening
// hours. Lexicographic comparison is safe on zero-padded HH:MM.
func withinBusinessHours(t string) bool {
	return t >= OpeningTime && t <= ClosingTime
}
