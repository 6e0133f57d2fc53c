package token

import "testing"

func TestCursorPeekMatchAdvanceOnEmpty(t *testing.T) {
	c := New(nil)
	if !c.Empty() {
		t.Fatalf("expected empty cursor")
	}
	if c.Peek() != nil {
		t.Fatalf("expected nil peek on empty cursor")
	}
	if c.Match("id") {
		t.Fatalf("match on empty cursor must be false")
	}
	if c.Take() != nil {
		t.Fatalf("take on empty cursor must return nil")
	}
	// Advance on empty must not panic.
	c.Advance()
}

func TestCursorMatchDoesNotConsume(t *testing.T) {
	c := New([]string{"id", "5"})
	if !c.Match("id") {
		t.Fatalf("expected match")
	}
	if c.Match("id") == false {
		t.Fatalf("match must be idempotent, not consuming")
	}
	if c.Remaining() != 2 {
		t.Fatalf("match must not consume: remaining=%d", c.Remaining())
	}
}

func TestCursorMatchAndAdvance(t *testing.T) {
	c := New([]string{"id", "5"})
	if !c.MatchAndAdvance("id") {
		t.Fatalf("expected match-and-advance to succeed")
	}
	if c.Remaining() != 1 {
		t.Fatalf("expected one token consumed, remaining=%d", c.Remaining())
	}
	if c.MatchAndAdvance("id") {
		t.Fatalf("keyword must not be matched twice")
	}
	tok := c.Take()
	if tok == nil || *tok != "5" {
		t.Fatalf("expected to take value token, got %v", tok)
	}
	if !c.Empty() {
		t.Fatalf("expected cursor exhausted")
	}
}

func TestCursorTailPeeksLastWithoutConsuming(t *testing.T) {
	c := New([]string{"show", "id", "0", "help"})
	if tail := c.Tail(); tail == nil || *tail != "help" {
		t.Fatalf("expected tail to be help, got %v", tail)
	}
	if c.Remaining() != 4 {
		t.Fatalf("tail must not consume: remaining=%d", c.Remaining())
	}
	if New(nil).Tail() != nil {
		t.Fatalf("expected nil tail on empty cursor")
	}
}

func TestCursorTakeAdvancesPastEachToken(t *testing.T) {
	c := New([]string{"a", "b", "c"})
	var got []string
	for !c.Empty() {
		got = append(got, *c.Take())
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
