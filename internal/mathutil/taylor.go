package mathutil

// TaylorSin approximates sin(x) with the Maclaurin series
//
//	sin(x) = x − x³/3! + x⁵/5! − ...
//
// truncated to the given number of terms. The angle is first reduced into
// (-π, π] so the series converges quickly. Each term is derived from the
// previous one (multiply by −x²/((2n)(2n+1))) instead of recomputing powers
// and factorials. terms ≤ 1 returns the reduced angle.
func TaylorSin(x float64, terms int) float64 {
	r := ReduceAngle(x)
	r2 := r * r

	term := r
	sum := term
	for n := 1; n < terms; n++ {
		denom := float64(taylorPowerStep*n) * float64(taylorPowerStep*n+1)
		term *= -r2 / denom
		sum += term
	}
	return sum
}
