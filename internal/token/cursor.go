// Package token provides a read-only view over the CLI argument vector
// with peek/match/advance operations, consolidating what the legacy C
// tool did with separate match and advance steps into a single
// match-and-advance primitive so a keyword is never consumed twice and
// never left un-consumed.
package token

// Cursor is a read-only view over an argument vector with a movable
// position. It never mutates the backing slice and never panics on an
// empty remainder.
type Cursor struct {
	args []string
	pos  int
}

// New returns a Cursor positioned at the start of args.
func New(args []string) *Cursor {
	return &Cursor{args: args}
}

// Empty reports whether no tokens remain.
func (c *Cursor) Empty() bool {
	return c.pos >= len(c.args)
}

// Peek returns the next token without consuming it, or nil if empty.
func (c *Cursor) Peek() *string {
	if c.Empty() {
		return nil
	}
	return &c.args[c.pos]
}

// Advance consumes the next token, if any. It is a no-op when empty.
func (c *Cursor) Advance() {
	if !c.Empty() {
		c.pos++
	}
}

// Take advances and returns the consumed token, or nil if empty.
func (c *Cursor) Take() *string {
	tok := c.Peek()
	c.Advance()
	return tok
}

// Match reports whether the next token equals lit, without consuming it.
func (c *Cursor) Match(lit string) bool {
	tok := c.Peek()
	return tok != nil && *tok == lit
}

// MatchAndAdvance consumes and returns true only when the next token
// equals lit; otherwise it consumes nothing and returns false, so a
// keyword is never matched without being consumed and never consumed
// without having matched. The dispatcher and the argument loop do not
// call it: they test with Match or a keyword-table lookup and then
// consume with Take or Advance.
func (c *Cursor) MatchAndAdvance(lit string) bool {
	if c.Match(lit) {
		c.Advance()
		return true
	}
	return false
}

// Remaining returns the count of unconsumed tokens.
func (c *Cursor) Remaining() int {
	return len(c.args) - c.pos
}

// Tail returns the last unconsumed token without consuming anything, or
// nil if empty. Used by the dispatcher's "ends in help" check, since a
// trailing help keyword may appear after other consumed tokens.
func (c *Cursor) Tail() *string {
	if c.Empty() {
		return nil
	}
	return &c.args[len(c.args)-1]
}
