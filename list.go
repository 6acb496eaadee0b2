package nbt

import (
	"bytes"
	"strings"
)

var _ Tag = NewListTag()

// ListTag holds an ordered sequence of unnamed tags. All elements must share
// one type; the encoder rejects mixed lists.
type ListTag []Tag

// NewListTag returns a TAG_List value holding the given elements.
func NewListTag(elems ...Tag) ListTag {
	return ListTag(elems)
}

func (v ListTag) V() any {
	return []Tag(v)
}

func (v ListTag) Type() Type {
	return TypeList
}

// ElementType returns the type of the list's elements, taken from the first
// one. An empty list has element type TypeEnd.
func (v ListTag) ElementType() Type {
	if len(v) == 0 {
		return TypeEnd
	}
	return v[0].Type()
}

func (v ListTag) String() string {
	elems := make([]string, len(v))
	for i, e := range v {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

func (v ListTag) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('[')
	for i, e := range v {
		if i > 0 {
			buf.WriteString(", ")
		}

		data, err := e.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}
