package storage

// All amounts are integer cents. The delivery fee and deliverer earnings are
// both a fixed 10% cut, rounded to a whole cent half away from zero. The
// original system rounded float dollars with Python's round(); half away
// from zero on cents keeps the documented fixtures (subtotal 417 -> fee 42)
// and avoids float drift entirely.
const feePercent = 10

func feeCents(subtotalCents int64) int64 {
	raw := subtotalCents * feePercent // hundredths of a cent
	if raw >= 0 {
		return (raw + 50) / 100
	}
	return (raw - 50) / 100
}
