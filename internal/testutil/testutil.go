// Package testutil provides helpers shared by the codec tests.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nbtcodec/nbt"
	"github.com/stretchr/testify/require"
)

// MakeValue turns v into a nbt.Tag.
func MakeValue(t testing.TB, v any) nbt.Tag {
	t.Helper()

	vv, err := nbt.NewValue(v)
	require.NoError(t, err)
	return vv
}

// MakeCompound creates a compound tag from a json object.
func MakeCompound(t testing.TB, jsonDoc string) *nbt.CompoundTag {
	t.Helper()

	ct := nbt.NewCompoundTag()
	err := ct.UnmarshalJSON([]byte(jsonDoc))
	require.NoError(t, err)

	return ct
}

// RequireTreeEqual fails the test when the two trees differ, showing a
// readable diff. Entry order counts.
func RequireTreeEqual(t testing.TB, want, got *nbt.CompoundTag) {
	t.Helper()

	diff := cmp.Diff(want, got, cmp.AllowUnexported(nbt.CompoundTag{}))
	require.Empty(t, diff)
}
