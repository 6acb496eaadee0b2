package nbt

import "fmt"

// Type represents the variant of a tag. The numeric values are the wire
// discriminators of the format and must never change.
type Type uint8

// List of tag types.
const (
	// TypeEnd marks the end of a compound on the wire and the element type
	// of an empty list. It is never the type of a real tag.
	TypeEnd Type = iota
	TypeByte
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeByteArray
	TypeString
	TypeList
	TypeCompound
	TypeIntArray
	TypeLongArray
)

func (t Type) String() string {
	switch t {
	case TypeEnd:
		return "end"
	case TypeByte:
		return "byte"
	case TypeShort:
		return "short"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeByteArray:
		return "byte array"
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	case TypeCompound:
		return "compound"
	case TypeIntArray:
		return "int array"
	case TypeLongArray:
		return "long array"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

func (t Type) valid() bool {
	return t >= TypeByte && t <= TypeLongArray
}
