/*
Package nbt implements the Named Binary Tag (NBT) serialization format: a
compact, big-endian binary encoding for trees of typed, named values.

An NBT document is always a single compound tag. A compound tag is an ordered
mapping from string keys to tags, where a tag is one of twelve fixed variants:
six numeric scalars (Byte, Short, Int, Long, Float, Double), three packed
arrays (ByteArray, IntArray, LongArray), length-prefixed UTF-8 Strings,
homogeneous Lists, and nested Compounds.

Building and encoding a document:

	ct := nbt.NewCompoundTag()
	ct.SetString("ip", "localhost:25565")
	ct.SetBool("hideAddress", true)

	err := nbt.WriteCompoundTag(w, ct)

ReadCompoundTag is the symmetric counterpart. Both operate on plain byte
streams; the Gzip and Zlib variants wrap the stream in the corresponding
compression container, which is how NBT documents are usually stored on disk.

Key order is preserved: a compound iterates, encodes and decodes its entries
in insertion order, and setting an existing key overwrites the value in place
without moving it.
*/
package nbt
