package nbt

import (
	"bytes"
	"strconv"

	"github.com/cockroachdb/errors"
)

var _ Tag = NewCompoundTag()

// Entry is a single named tag inside a compound.
type Entry struct {
	Name  string
	Value Tag
}

// CompoundTag stores an ordered group of named tags. It is the only tag that
// can be the root of a document. Entries keep their insertion order, which is
// the order they are written on the wire.
type CompoundTag struct {
	// Name is the document name. It is only encoded when the compound is the
	// root; nested compounds are named by their parent's key instead.
	Name string

	entries []Entry
}

// NewCompoundTag creates an empty unnamed compound.
func NewCompoundTag() *CompoundTag {
	return new(CompoundTag)
}

// NewNamedCompoundTag creates an empty compound carrying a document name.
func NewNamedCompoundTag(name string) *CompoundTag {
	return &CompoundTag{Name: name}
}

// Add appends an entry to the compound without checking for duplicates.
func (ct *CompoundTag) Add(name string, v Tag) *CompoundTag {
	ct.entries = append(ct.entries, Entry{name, v})
	return ct
}

// Get returns the tag stored under name. Returns an error wrapping
// ErrKeyNotFound if there is none.
func (ct *CompoundTag) Get(name string) (Tag, error) {
	for _, e := range ct.entries {
		if e.Name == name {
			return e.Value, nil
		}
	}

	return nil, errors.Wrapf(ErrKeyNotFound, "%s not found", name)
}

// Set stores v under name. If the key already exists, the value is replaced
// in place and keeps its position; otherwise the entry is appended.
func (ct *CompoundTag) Set(name string, v Tag) {
	for i := range ct.entries {
		if ct.entries[i].Name == name {
			ct.entries[i].Value = v
			return
		}
	}

	ct.Add(name, v)
}

// Delete removes the entry stored under name. Returns an error wrapping
// ErrKeyNotFound if there is none.
func (ct *CompoundTag) Delete(name string) error {
	for i := range ct.entries {
		if ct.entries[i].Name == name {
			ct.entries = append(ct.entries[0:i], ct.entries[i+1:]...)
			return nil
		}
	}

	return errors.Wrapf(ErrKeyNotFound, "%s not found", name)
}

// Iterate goes through all the entries of the compound in insertion order and
// calls the given function by passing each one of them.
// If the given function returns an error, the iteration stops.
func (ct *CompoundTag) Iterate(fn func(name string, v Tag) error) error {
	for _, e := range ct.entries {
		err := fn(e.Name, e.Value)
		if err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of entries of the compound.
func (ct *CompoundTag) Len() int {
	return len(ct.entries)
}

func (ct *CompoundTag) V() any {
	return ct
}

func (ct *CompoundTag) Type() Type {
	return TypeCompound
}

func (ct *CompoundTag) String() string {
	t, _ := ct.MarshalJSON()
	return string(t)
}

// MarshalJSON encodes the compound to json, keeping entry order.
func (ct *CompoundTag) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	var notFirst bool
	err := ct.Iterate(func(name string, v Tag) error {
		if notFirst {
			buf.WriteString(", ")
		}
		notFirst = true

		buf.WriteString(strconv.Quote(name))
		buf.WriteString(": ")

		data, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = buf.Write(data)
		return err
	})
	if err != nil {
		return nil, err
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// SetBool stores x as a byte tag holding 0 or 1, the format's boolean
// convention.
func (ct *CompoundTag) SetBool(name string, x bool) {
	if x {
		ct.Set(name, NewByteTag(1))
		return
	}
	ct.Set(name, NewByteTag(0))
}

func (ct *CompoundTag) SetByte(name string, x int8) {
	ct.Set(name, NewByteTag(x))
}

func (ct *CompoundTag) SetShort(name string, x int16) {
	ct.Set(name, NewShortTag(x))
}

func (ct *CompoundTag) SetInt(name string, x int32) {
	ct.Set(name, NewIntTag(x))
}

func (ct *CompoundTag) SetLong(name string, x int64) {
	ct.Set(name, NewLongTag(x))
}

func (ct *CompoundTag) SetFloat(name string, x float32) {
	ct.Set(name, NewFloatTag(x))
}

func (ct *CompoundTag) SetDouble(name string, x float64) {
	ct.Set(name, NewDoubleTag(x))
}

func (ct *CompoundTag) SetString(name, x string) {
	ct.Set(name, NewStringTag(x))
}

func (ct *CompoundTag) SetByteArray(name string, x []byte) {
	ct.Set(name, NewByteArrayTag(x))
}

func (ct *CompoundTag) SetIntArray(name string, x []int32) {
	ct.Set(name, NewIntArrayTag(x))
}

func (ct *CompoundTag) SetLongArray(name string, x []int64) {
	ct.Set(name, NewLongArrayTag(x))
}

func (ct *CompoundTag) SetList(name string, elems ...Tag) {
	ct.Set(name, NewListTag(elems...))
}

func (ct *CompoundTag) SetCompound(name string, x *CompoundTag) {
	ct.Set(name, x)
}

func (ct *CompoundTag) getTyped(name string, t Type) (Tag, error) {
	v, err := ct.Get(name)
	if err != nil {
		return nil, err
	}
	if v.Type() != t {
		return nil, errors.Wrapf(ErrTypeMismatch, "%s holds a %s, not a %s", name, v.Type(), t)
	}

	return v, nil
}

// GetBool reads a byte tag as a boolean: any non-zero value is true.
func (ct *CompoundTag) GetBool(name string) (bool, error) {
	v, err := ct.getTyped(name, TypeByte)
	if err != nil {
		return false, err
	}
	return AsBool(v), nil
}

func (ct *CompoundTag) GetByte(name string) (int8, error) {
	v, err := ct.getTyped(name, TypeByte)
	if err != nil {
		return 0, err
	}
	return AsInt8(v), nil
}

func (ct *CompoundTag) GetShort(name string) (int16, error) {
	v, err := ct.getTyped(name, TypeShort)
	if err != nil {
		return 0, err
	}
	return AsInt16(v), nil
}

func (ct *CompoundTag) GetInt(name string) (int32, error) {
	v, err := ct.getTyped(name, TypeInt)
	if err != nil {
		return 0, err
	}
	return AsInt32(v), nil
}

func (ct *CompoundTag) GetLong(name string) (int64, error) {
	v, err := ct.getTyped(name, TypeLong)
	if err != nil {
		return 0, err
	}
	return AsInt64(v), nil
}

func (ct *CompoundTag) GetFloat(name string) (float32, error) {
	v, err := ct.getTyped(name, TypeFloat)
	if err != nil {
		return 0, err
	}
	return AsFloat32(v), nil
}

func (ct *CompoundTag) GetDouble(name string) (float64, error) {
	v, err := ct.getTyped(name, TypeDouble)
	if err != nil {
		return 0, err
	}
	return AsFloat64(v), nil
}

func (ct *CompoundTag) GetString(name string) (string, error) {
	v, err := ct.getTyped(name, TypeString)
	if err != nil {
		return "", err
	}
	return AsString(v), nil
}

func (ct *CompoundTag) GetByteArray(name string) ([]byte, error) {
	v, err := ct.getTyped(name, TypeByteArray)
	if err != nil {
		return nil, err
	}
	return AsByteSlice(v), nil
}

func (ct *CompoundTag) GetIntArray(name string) ([]int32, error) {
	v, err := ct.getTyped(name, TypeIntArray)
	if err != nil {
		return nil, err
	}
	return v.V().([]int32), nil
}

func (ct *CompoundTag) GetLongArray(name string) ([]int64, error) {
	v, err := ct.getTyped(name, TypeLongArray)
	if err != nil {
		return nil, err
	}
	return v.V().([]int64), nil
}

func (ct *CompoundTag) GetList(name string) (ListTag, error) {
	v, err := ct.getTyped(name, TypeList)
	if err != nil {
		return nil, err
	}
	return AsList(v), nil
}

func (ct *CompoundTag) GetCompound(name string) (*CompoundTag, error) {
	v, err := ct.getTyped(name, TypeCompound)
	if err != nil {
		return nil, err
	}
	return AsCompound(v), nil
}
