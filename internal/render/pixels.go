package render

// fillWorldRGBA converts the three coupled grids into RGBA pixels in buf.
// Alive cells render black; dead cells show the nutrient-tinted background
// with the green trail blended on top by its counter value.
func fillWorldRGBA(buf []byte, alive, trail []uint8, nutrient []float64) {
	for i := range alive {
		base := i * 4
		if alive[i] != 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0xff
			continue
		}

		n := nutrient[i]
		r := 40 + 60*n
		g := 140 + 40*n
		b := 230 - 80*n

		if t := trail[i]; t > 0 {
			a := float64(t) / 255
			r = r * (1 - a)
			g = g*(1-a) + 180*a
			b = b * (1 - a)
		}

		buf[base+0] = uint8(r)
		buf[base+1] = uint8(g)
		buf[base+2] = uint8(b)
		buf[base+3] = 0xff
	}
}
