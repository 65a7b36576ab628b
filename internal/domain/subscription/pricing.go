package subscription

import "math"

// WeeksPerMonth approximates the average number of weeks in a month. It is a
// fixed business constant, not configuration.
const WeeksPerMonth = 4.3

// MaxActivePerUser caps concurrently active subscriptions per user. Checked at
// creation time only.
const MaxActivePerUser = 3

// Price computes the monthly total for a plan: unit price times meals per day
// times delivery days per week times weeks per month, rounded to 2 decimals.
func Price(planPrice float64, mealTypes, deliveryDays int) float64 {
	total := planPrice * float64(mealTypes) * float64(deliveryDays) * WeeksPerMonth
	return math.Round(total*100) / 100
}
