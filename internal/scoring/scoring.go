// Package scoring computes DraftKings-style fantasy points from a
// canonical stat line. Column-name aliases are resolved by the source
// adapters before a line gets here, so the formula lives in exactly one
// place no matter which source produced the numbers.
package scoring

// StatLine is one player's counting stats for a single game. Stats a
// source did not report are zero.
type StatLine struct {
	Points            float64
	ThreePointersMade float64
	Rebounds          float64
	Assists           float64
	Steals            float64
	Blocks            float64
	Turnovers         float64
}

// Score returns the fantasy-point value of a stat line. The bonus checks
// exactly five categories: points, rebounds, assists, steals, blocks.
// Reaching double digits in two of them adds 1.5, in three of them a
// further 1.5.
func Score(s StatLine) float64 {
	total := s.Points*1.0 +
		s.ThreePointersMade*0.5 +
		s.Rebounds*1.25 +
		s.Assists*1.5 +
		s.Steals*2.0 +
		s.Blocks*2.0 -
		s.Turnovers*0.5

	doubleDigit := 0
	for _, v := range [5]float64{s.Points, s.Rebounds, s.Assists, s.Steals, s.Blocks} {
		if v >= 10 {
			doubleDigit++
		}
	}
	if doubleDigit >= 2 {
		total += 1.5
	}
	if doubleDigit >= 3 {
		total += 1.5
	}

	return total
}
