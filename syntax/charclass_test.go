package syntax

import "testing"

func TestCharSet_RangeContains(t *testing.T) {
	c := NewCharSet()
	c.AddRange('a', 'z')
	if !c.Contains('m') {
		t.Fatal("expected 'm' in [a-z]")
	}
	if c.Contains('A') {
		t.Fatal("did not expect 'A' in [a-z]")
	}
}

func TestCharSet_Negate(t *testing.T) {
	c := NewCharSet()
	c.AddRange('0', '9')
	c.SetNegate(true)
	if c.Contains('5') {
		t.Fatal("did not expect '5' in [^0-9]")
	}
	if !c.Contains('x') {
		t.Fatal("expected 'x' in [^0-9]")
	}
}

func TestCharSet_Singleton(t *testing.T) {
	c := NewCharSet()
	c.AddChar('x')
	if !c.IsSingleton() {
		t.Fatal("expected singleton set")
	}
	if c.SingletonChar() != 'x' {
		t.Fatalf("wanted 'x' got %q", c.SingletonChar())
	}
}

func TestShorthandClasses_ASCIIOnly(t *testing.T) {
	if !WordClass().Contains('_') {
		t.Fatal("expected '_' in \\w")
	}
	if WordClass().Contains(' ') {
		t.Fatal("did not expect ' ' in \\w")
	}
	if !SpaceClass().Contains('\t') {
		t.Fatal("expected tab in \\s")
	}
	if !DigitClass().Contains('5') {
		t.Fatal("expected digit in \\d")
	}
	if DigitClass().Contains('a') {
		t.Fatal("did not expect letter in \\d")
	}
}

func TestCharSet_ASCIIBitmaskMatchesRangeScan(t *testing.T) {
	c := NewCharSet()
	c.AddRange('a', 'f')
	c.AddChar('_')
	for ch := rune(0); ch < 128; ch++ {
		want := ch == '_' || (ch >= 'a' && ch <= 'f')
		if got := c.Contains(ch); got != want {
			t.Fatalf("Contains(%q): wanted %v got %v", ch, want, got)
		}
	}
	// Mutating after the bitmask is built must invalidate the cache.
	c.AddChar('z')
	if !c.Contains('z') {
		t.Fatal("expected 'z' to be a member after AddChar invalidated the cache")
	}
}

func TestCharSet_IsSingletonInverse(t *testing.T) {
	c := NewCharSet()
	c.AddChar('x')
	c.SetNegate(true)
	if !c.IsSingletonInverse() {
		t.Fatal("expected [^x] to report IsSingletonInverse")
	}
	if c.IsSingleton() {
		t.Fatal("a negated singleton must not also report IsSingleton")
	}
}

func TestCharSet_IsMergeable(t *testing.T) {
	a, b := NewCharSet(), NewCharSet()
	a.AddRange('a', 'z')
	b.AddRange('0', '9')
	if !a.IsMergeable(b) {
		t.Fatal("two non-negated sets should be mergeable")
	}
	b.SetNegate(true)
	if a.IsMergeable(b) {
		t.Fatal("sets with different negation polarity must not be mergeable")
	}
}

func TestASCIIFold(t *testing.T) {
	if ASCIIFold('A') != 'a' {
		t.Fatalf("wanted 'a' got %q", ASCIIFold('A'))
	}
	if ASCIIFold('z') != 'z' {
		t.Fatalf("wanted 'z' got %q", ASCIIFold('z'))
	}
}
