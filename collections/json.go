package collections

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON implements [json.Marshaler]. A collection with dense integer
// keys (0 … n-1) renders as a JSON array; anything else renders as an
// object with stringified keys in insertion order. HTML characters and
// forward slashes are left unescaped.
func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if c.isList() {
		buf.WriteByte('[')
		for i, e := range c.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(&buf, e.Value); err != nil {
				return nil, err
			}
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}
	buf.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(&buf, stringKey(e.Key)); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeValue(&buf, e.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToJSON serialises the collection as indented, human-readable JSON.
func (c *Collection) ToJSON() ([]byte, error) {
	compact, err := c.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// String returns the indented JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.entries)
	}
	return string(b)
}

// isList reports whether the keys are exactly 0 … n-1 in order.
func (c *Collection) isList() bool {
	for i, e := range c.entries {
		if k, ok := e.Key.(int); !ok || k != i {
			return false
		}
	}
	return true
}

// encodeValue writes v as JSON without HTML escaping. Nested collections
// marshal through their own ordered encoder.
func encodeValue(buf *bytes.Buffer, v any) error {
	if col, ok := v.(*Collection); ok {
		b, err := col.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
	return nil
}
