package nbt

import "strconv"

var _ Tag = NewStringTag("")

type StringTag string

// NewStringTag returns a TAG_String value.
func NewStringTag(x string) StringTag {
	return StringTag(x)
}

func (v StringTag) V() any {
	return string(v)
}

func (v StringTag) Type() Type {
	return TypeString
}

func (v StringTag) String() string {
	return strconv.Quote(string(v))
}

func (v StringTag) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(v))), nil
}
