package demoncoin

import "math"

// CaptureMultiplier widens the capture zone around the coin.
const CaptureMultiplier = 1.5

// Captures reports whether a demon released at demonY is captured by a coin
// at coinY. A release close enough to the coin captures, and so does any
// release lifted more than lift above the demon's home line.
func Captures(demonY, coinY, homeY, zone, lift float64) bool {
	if math.Abs(demonY-coinY) < zone*CaptureMultiplier {
		return true
	}
	return demonY < homeY-lift
}

// ClampDrag keeps a dragged demon between top and its home line.
func ClampDrag(y, top, homeY float64) float64 {
	return math.Max(top, math.Min(y, homeY))
}

// Roam advances an ultra-mode demon by dt seconds inside [margin,
// width-margin]. The bob height is a function of x and the demon's fixed
// wobble phase only.
func Roam(d *Demon, dt, width, margin, amplitude, frequency float64) {
	d.X += d.Dir * d.Speed * dt
	if d.X <= margin {
		d.Dir = 1
	}
	if d.X >= width-margin {
		d.Dir = -1
	}
	d.Y = d.HomeY + amplitude*math.Sin(frequency*d.X+d.Wobble)
}
