package geometry

import "fmt"

// PriceColor maps a price onto a green-to-red HSL ramp: hue 120 for the
// cheapest, hue 0 for the most expensive, saturation and lightness fixed.
// Prices outside [min, max] clamp to the endpoints. When min == max the
// ratio is 0, so a flat price range renders green rather than dividing by
// zero.
func PriceColor(price, min, max float64) string {
	return fmt.Sprintf("hsl(%d, 80%%, 45%%)", int(PriceHue(price, min, max)))
}

// PriceHue returns the hue component of PriceColor in degrees.
func PriceHue(price, min, max float64) float64 {
	ratio := PriceRatio(price, min, max)
	return (1.0 - ratio) * 120
}

// PriceRatio normalizes price into [0, 1] over the given range, clamped.
func PriceRatio(price, min, max float64) float64 {
	if max <= min {
		return 0
	}
	ratio := (price - min) / (max - min)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
