package quotescan

import "testing"

func TestCursorTracksSingleAndDoubleQuotes(t *testing.T) {
	c := New(`a'b"c'd"e`)
	var got []bool
	for ch, ok := c.Next(); ok; ch, ok = c.Next() {
		_ = ch
		got = append(got, c.InQuote())
	}
	// a ' b " c ' d " e
	want := []bool{false, true, true, true, true, true, false, true, true}
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected InQuote=%v, got %v", i, want[i], got[i])
		}
	}
}

func TestLookingAt(t *testing.T) {
	c := New("<<EOF")
	c.Next()
	if !c.LookingAt("<<") {
		t.Fatal("expected LookingAt(\"<<\") to be true at position 0")
	}
	if c.LookingAt("<<<") {
		t.Fatal("expected LookingAt(\"<<<\") to be false")
	}
}

func TestIsNameByteAndStart(t *testing.T) {
	if !IsNameStart('_') || !IsNameStart('a') || IsNameStart('1') {
		t.Fatal("IsNameStart classification wrong")
	}
	if !IsNameByte('1') || !IsNameByte('_') || IsNameByte('$') {
		t.Fatal("IsNameByte classification wrong")
	}
}
