package simulator

import (
	"math/rand"

	"retail-datagen/models"
	"retail-datagen/utils"
)

// minDailyVolume is the floor applied after every multiplier; no day ever
// drops below it.
const minDailyVolume = 50

// dailyVolume determines how many transactions to simulate for one day.
func dailyVolume(rng *rand.Rand, day *models.DateInfo, base int, p Policy) int {
	v := float64(base)
	v *= day.SeasonalMultiplier
	v *= day.WeekdayMultiplier
	v *= utils.FloatRange(rng, 0.8, 1.2)

	switch {
	case day.Month == 11 || day.Month == 12:
		switch {
		case day.IsWeekend && (day.Day == 24 || day.Day == 25 || day.Day == 31):
			v *= 3 // holiday peak days
		case day.IsWeekend:
			v *= 1.8
		case p.MidweekBoost && day.Weekday >= 1 && day.Weekday <= 4:
			v *= 1.4
		}
	case day.Month >= 6 && day.Month <= 8:
		switch {
		case day.IsWeekend:
			v *= 1.6
		case p.MidweekBoost && day.Weekday >= 1 && day.Weekday <= 4:
			v *= 1.3
		}
	case day.Month >= 1 && day.Month <= 3:
		v *= utils.FloatRange(rng, 0.5, 1.1)
	}

	if p.VolumeNoise {
		v *= utils.FloatRange(rng, 0.7, 1.5)
	}

	n := int(v)
	if n < minDailyVolume {
		n = minDailyVolume
	}
	return n
}
