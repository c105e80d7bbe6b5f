package lifecode

import "testing"

func TestHistoryFieldClampsAtBounds(t *testing.T) {
	field := NewHistoryField(2, 1)
	alive := []uint8{1, 0}

	for i := 0; i < 300; i++ {
		field.Update(alive)
	}
	if got := field.At(0, 0); got != 255 {
		t.Fatalf("counter after 300 live updates = %d, want 255", got)
	}
	if got := field.At(1, 0); got != 0 {
		t.Fatalf("counter for always-dead cell = %d, want 0", got)
	}

	alive[0] = 0
	for i := 0; i < 300; i++ {
		field.Update(alive)
	}
	if got := field.At(0, 0); got != 0 {
		t.Fatalf("counter after 300 dead updates = %d, want 0", got)
	}
}

func TestHistoryFieldStepsByOne(t *testing.T) {
	field := NewHistoryField(1, 1)
	alive := []uint8{1}

	field.Update(alive)
	field.Update(alive)
	if got := field.At(0, 0); got != 2 {
		t.Fatalf("counter after 2 live updates = %d, want 2", got)
	}

	alive[0] = 0
	field.Update(alive)
	if got := field.At(0, 0); got != 1 {
		t.Fatalf("counter after decay = %d, want 1", got)
	}
}
