package render

import "testing"

func TestFillWorldRGBA(t *testing.T) {
	alive := []uint8{1, 0, 0, 0}
	trail := []uint8{0, 0, 255, 100}
	nutrient := []float64{0.5, 0, 1, 0.5}
	buf := make([]byte, 4*len(alive))

	fillWorldRGBA(buf, alive, trail, nutrient)

	// Alive cell is opaque black regardless of the other grids.
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0 || buf[3] != 0xff {
		t.Fatalf("alive pixel = %v", buf[0:4])
	}

	// Bare background at nutrient 0: base tint (40, 140, 230).
	if buf[4] != 40 || buf[5] != 140 || buf[6] != 230 {
		t.Fatalf("background pixel = %v", buf[4:8])
	}

	// Saturated trail hides the background entirely: pure trail green.
	if buf[8] != 0 || buf[9] != 180 || buf[10] != 0 {
		t.Fatalf("saturated trail pixel = %v", buf[8:12])
	}

	// Partial trail blends between tint and green; all pixels opaque.
	if buf[11] != 0xff || buf[15] != 0xff {
		t.Fatal("expected opaque alpha for every pixel")
	}
	if g := buf[13]; g <= 140 || g >= 180 {
		t.Fatalf("partial trail green = %d, want between tint and trail", g)
	}
}
