package runecacher

import "testing"

func TestRuneAtFirstChar(t *testing.T) {
	rc := NewFromString("test")
	if want, got := 't', mustRune(rc.RuneAt(0)); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}

func TestRuneAtSecondChar(t *testing.T) {
	rc := NewFromString("test")
	if want, got := 'e', mustRune(rc.RuneAt(1)); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}

func TestRuneAtMultiByte(t *testing.T) {
	rc := NewFromString("aéb") // 'a', 'é' (2 bytes), 'b'
	r, size := rc.RuneAt(1)
	if want, got := 'é', r; want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
	if want, got := 2, size; want != got {
		t.Fatalf("wanted size %v, got %v", want, got)
	}
	if want, got := 'b', mustRune(rc.RuneAt(3)); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}

func TestPrevRuneAt(t *testing.T) {
	rc := NewFromString("aéb")
	r, size := rc.PrevRuneAt(3)
	if want, got := 'é', r; want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
	if want, got := 2, size; want != got {
		t.Fatalf("wanted size %v, got %v", want, got)
	}
}

func TestNextPosPrevPosRoundtrip(t *testing.T) {
	rc := NewFromString("aéb")
	p := rc.NextPos(0)
	if want, got := 1, p; want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
	p = rc.NextPos(p)
	if want, got := 3, p; want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
	if want, got := 1, rc.PrevPos(p); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}

func mustRune(r rune, _ int) rune { return r }
