package nbt

import "github.com/cockroachdb/errors"

var (
	// ErrKeyNotFound is returned by CompoundTag.Get and Delete when the
	// compound holds no entry under the given key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTypeMismatch is returned by the typed CompoundTag getters when the
	// entry exists but holds a tag of a different type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidTypeID is returned by the decoder when it reads a type id
	// outside the known range, or when the document root is not a compound.
	ErrInvalidTypeID = errors.New("invalid tag type id")

	// ErrTruncated is returned by the decoder when the input ends before a
	// length prefix or the grammar says it should.
	ErrTruncated = errors.New("unexpected end of input")

	// ErrInvalidUTF8 is returned by the decoder when a string payload is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 string")

	// ErrStringTooLong is returned by the encoder when a string or key does
	// not fit the 16-bit length prefix.
	ErrStringTooLong = errors.New("string exceeds 65535 bytes")

	// ErrInvalidListType is returned by the decoder when a list declares the
	// end type id but a non-zero element count.
	ErrInvalidListType = errors.New("invalid list element type")

	// ErrHeterogeneousList is returned by the encoder when a list holds
	// elements of more than one type.
	ErrHeterogeneousList = errors.New("heterogeneous list")

	// ErrTooDeep is returned by the decoder when tag nesting exceeds the
	// supported depth.
	ErrTooDeep = errors.New("nesting exceeds maximum depth")
)
