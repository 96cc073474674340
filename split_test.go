package oniguru

import (
	"slices"
	"testing"
)

func TestSplit_Basic(t *testing.T) {
	re := MustCompile(`a(.)c(.)e`, 0)
	vals := re.Split("123abcde456aBCDe789")
	if want, got := []string{"123", "456aBCDe789"}, vals; !slices.Equal(want, got) {
		t.Errorf("wanted %v got %v", want, got)
	}
}

func TestSplit_IgnoreCase(t *testing.T) {
	re := MustCompile(`a(.)c(.)e`, IgnoreCase)
	vals := re.Split("123abcde456aBCDe789")
	if want, got := []string{"123", "456", "789"}, vals; !slices.Equal(want, got) {
		t.Errorf("wanted %v got %v", want, got)
	}
}

func TestScenario_CommaSplit(t *testing.T) {
	re := MustCompile(`,`, 0)
	if want, got := []string{"a", "", "b"}, re.Split("a,,b"); !slices.Equal(want, got) {
		t.Errorf("wanted %v got %v", want, got)
	}
}

func TestScenario_NoMatchSplit(t *testing.T) {
	re := MustCompile(`xyz`, 0)
	if want, got := []string{"hello world"}, re.Split("hello world"); !slices.Equal(want, got) {
		t.Errorf("wanted %v got %v", want, got)
	}
}
