package dispatch

import (
	"github.com/orosp/iproute2/internal/numparse"
	"github.com/orosp/iproute2/internal/token"
	"github.com/orosp/iproute2/internal/wire"
)

// valueKind is how a keyword's single following token is parsed.
type valueKind int

const (
	valU32 valueKind = iota
	valU64
	valS32
	valS64
	valStr
	valBool
	valEnum
)

// keywordSpec is one top-level or nested-sub keyword: its CLI name, the
// wire attribute id it fills, and how to parse its value.
type keywordSpec struct {
	name string
	id   uint16
	kind valueKind
	enum wire.Enum
}

// nestSpec is one nesting keyword (parent-device, parent-pin,
// reference-sync): the nested attribute id, the sub-id field its value
// token fills immediately on open, and the sub-keywords valid once the
// nest is open.
type nestSpec struct {
	name        string
	attrID      uint16
	idField     uint16
	subKeywords []keywordSpec
}

// argLoopResult carries the built request payload plus the set of
// top-level keyword names consumed, so callers can enforce
// verb-specific required-attribute checks (e.g. "set" requires "id")
// after the loop completes.
type argLoopResult struct {
	builder *wire.Builder
	seen    map[string]bool
}

// runArgLoop implements the state machine of spec.md's argument loop:
// Top / InNest(k) / ExpectValue(kw) / ExpectSubValue(kw,k). Each
// iteration consumes at least one token, returns an error, or closes the
// open nest without consuming (at most once per opened nest, and every
// nest open consumes tokens), so the loop always terminates in
// O(#tokens).
func runArgLoop(c *token.Cursor, top []keywordSpec, nests []nestSpec) (argLoopResult, error) {
	b := wire.NewBuilder()
	seen := make(map[string]bool)

	var activeNest *nestSpec
	var activeHandle wire.NestHandle

	for !c.Empty() {
		tok := *c.Peek()

		if activeNest != nil {
			if kw, ok := findKeyword(activeNest.subKeywords, tok); ok {
				c.Advance()
				if err := consumeValue(c, b, kw); err != nil {
					return argLoopResult{}, err
				}
				continue
			}
			b.CloseNested(activeHandle)
			activeNest = nil
			continue
		}

		if ns, ok := findNest(nests, tok); ok {
			c.Advance()
			idTok := c.Take()
			if idTok == nil {
				return argLoopResult{}, missingArgument(ns.name)
			}
			id, err := numparse.ParseUint(*idTok, 32)
			if err != nil {
				return argLoopResult{}, invalidArgument(ns.name, err)
			}
			handle := b.OpenNested(ns.attrID)
			b.PutU32(ns.idField, uint32(id))
			nsCopy := ns
			activeNest = &nsCopy
			activeHandle = handle
			seen[ns.name] = true
			continue
		}

		if kw, ok := findKeyword(top, tok); ok {
			c.Advance()
			if err := consumeValue(c, b, kw); err != nil {
				return argLoopResult{}, err
			}
			seen[kw.name] = true
			continue
		}

		return argLoopResult{}, usageErrorf("unrecognized keyword %q", tok)
	}

	if activeNest != nil {
		b.CloseNested(activeHandle)
	}
	return argLoopResult{builder: b, seen: seen}, nil
}

func consumeValue(c *token.Cursor, b *wire.Builder, kw keywordSpec) error {
	valTok := c.Take()
	if valTok == nil {
		return missingArgument(kw.name)
	}
	return putValue(b, kw, *valTok)
}

func putValue(b *wire.Builder, kw keywordSpec, raw string) error {
	switch kw.kind {
	case valU32:
		v, err := numparse.ParseUint(raw, 32)
		if err != nil {
			return invalidArgument(kw.name, err)
		}
		b.PutU32(kw.id, uint32(v))
	case valU64:
		v, err := numparse.ParseUint(raw, 64)
		if err != nil {
			return invalidArgument(kw.name, err)
		}
		b.PutU64(kw.id, v)
	case valS32:
		v, err := numparse.ParseInt(raw, 32)
		if err != nil {
			return invalidArgument(kw.name, err)
		}
		b.PutS32(kw.id, int32(v))
	case valS64:
		v, err := numparse.ParseInt(raw, 64)
		if err != nil {
			return invalidArgument(kw.name, err)
		}
		b.PutS64(kw.id, v)
	case valStr:
		b.PutStr(kw.id, raw)
	case valBool:
		v, err := numparse.ParseBool(raw)
		if err != nil {
			return invalidArgument(kw.name, err)
		}
		var u uint32
		if v {
			u = 1
		}
		b.PutU32(kw.id, u)
	case valEnum:
		code, err := kw.enum.Encode(raw)
		if err != nil {
			return invalidArgument(kw.name, err)
		}
		b.PutU32(kw.id, code)
	}
	return nil
}

func findKeyword(list []keywordSpec, name string) (keywordSpec, bool) {
	for _, kw := range list {
		if kw.name == name {
			return kw, true
		}
	}
	return keywordSpec{}, false
}

func findNest(list []nestSpec, name string) (nestSpec, bool) {
	for _, ns := range list {
		if ns.name == name {
			return ns, true
		}
	}
	return nestSpec{}, false
}
