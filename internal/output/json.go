package output

import (
	"encoding/json"
	"io"
)

// jsonFrame is one open container: either a JSON object or a JSON array.
// attachKey is the key it will be installed under in its parent object
// when closed; it is ignored when the parent is itself an array (append
// instead of keyed assignment). merge marks a frame that shares its parent's
// object map directly rather than being attached under a key on close:
// the case of an OpenObject whose enclosing scope is itself a plain
// object rather than an array, which flattens the entity's fields into
// that enclosing object instead of nesting them under a bogus key.
type jsonFrame struct {
	attachKey string
	isArray   bool
	merge     bool
	obj       map[string]interface{}
	arr       []interface{}
}

func (f *jsonFrame) value() interface{} {
	if f.isArray {
		return f.arr
	}
	return f.obj
}

// JSONSink accumulates a single JSON document across calls and writes it
// out once on Close. A monitor loop that never sees SIGINT never
// produces a document; this mirrors the spec's description of the
// notification loop closing its output array scope only on exit, since
// a half-written JSON array is not a usable document.
type JSONSink struct {
	w      io.Writer
	pretty bool
	stack  []*jsonFrame
}

// NewJSONSink returns a JSONSink writing a single document to w when
// Close is called. pretty selects indented formatting.
func NewJSONSink(w io.Writer, pretty bool) *JSONSink {
	root := &jsonFrame{obj: map[string]interface{}{}}
	return &JSONSink{w: w, pretty: pretty, stack: []*jsonFrame{root}}
}

func (s *JSONSink) top() *jsonFrame {
	return s.stack[len(s.stack)-1]
}

func (s *JSONSink) attach(key string, value interface{}) {
	parent := s.top()
	if parent.isArray {
		parent.arr = append(parent.arr, value)
		return
	}
	parent.obj[key] = value
}

func (s *JSONSink) push(f *jsonFrame) {
	s.stack = append(s.stack, f)
}

func (s *JSONSink) pop() *jsonFrame {
	f := s.top()
	s.stack = s.stack[:len(s.stack)-1]
	return f
}

// OpenObject begins one entity. When the enclosing scope is itself a
// plain object (the single-entity case: the document root, or a direct
// OpenObject with no surrounding array) its fields are flattened into
// that enclosing object rather than nested under header. Inside an
// array the entity is appended as an element. header is never written
// to the JSON document; only the text sink uses it as a label.
func (s *JSONSink) OpenObject(header string) {
	parent := s.top()
	if !parent.isArray {
		s.push(&jsonFrame{obj: parent.obj, merge: true})
		return
	}
	s.push(&jsonFrame{obj: map[string]interface{}{}, attachKey: header})
}

func (s *JSONSink) CloseObject() {
	f := s.pop()
	if f.merge {
		return
	}
	s.attach(f.attachKey, f.value())
}

func (s *JSONSink) OpenArray(name string) {
	s.push(&jsonFrame{isArray: true, arr: []interface{}{}, attachKey: name})
}

func (s *JSONSink) CloseArray() {
	f := s.pop()
	s.attach(f.attachKey, f.value())
}

func (s *JSONSink) FieldStr(name, value string) {
	s.top().obj[name] = value
}

func (s *JSONSink) FieldU(name string, value uint64) {
	s.top().obj[name] = value
}

func (s *JSONSink) FieldS(name string, value int64) {
	s.top().obj[name] = value
}

// FieldHex stores value as a plain JSON number. Clock ids are
// hex-rendered only in text output; JSON carries the numeric value.
func (s *JSONSink) FieldHex(name string, value uint64) {
	s.top().obj[name] = value
}

// Close marshals the accumulated document and writes it to the
// underlying writer. It is an error to call Close with unbalanced
// Open*/Close* calls still outstanding.
func (s *JSONSink) Close() error {
	if len(s.stack) != 1 {
		return errUnbalancedScope
	}
	root := s.stack[0].obj
	var (
		out []byte
		err error
	)
	if s.pretty {
		out, err = json.MarshalIndent(root, "", "  ")
	} else {
		out, err = json.Marshal(root)
	}
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = s.w.Write(out)
	return err
}
