// Package output implements the structured output sink the protocol
// engine renders through. spec.md treats this as an external
// collaborator behind a small abstract interface
// (out_open_object/out_close_object/out_array/out_field_str/u/s/hex); this
// package supplies the two concrete renderers (plain text, JSON) a
// runnable binary needs.
package output

// Sink is the abstract renderer the dispatcher and operation executors
// render through. Implementations never decide content, only how it is
// framed: a plain columnar writer, or a JSON document.
type Sink interface {
	// OpenObject begins one entity or sub-record. header is used by the
	// text sink as the entity's leading line (e.g. "device id 0"). The
	// JSON sink ignores header: inside an array the entity is appended
	// as an element; when the enclosing scope is itself a plain object
	// (the single-entity case), the JSON sink flattens the entity's
	// fields directly into it. Pass "" for an
	// anonymous element (e.g. one entry of an array).
	OpenObject(header string)
	CloseObject()

	// OpenArray begins a named sequence (a dump's top-level array, or a
	// nested multi-attribute's expanded entries).
	OpenArray(name string)
	CloseArray()

	FieldStr(name, value string)
	FieldU(name string, value uint64)
	FieldS(name string, value int64)
	FieldHex(name string, value uint64)
}
