package nbt_test

import (
	"testing"

	"github.com/nbtcodec/nbt"
	"github.com/nbtcodec/nbt/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestCompoundTagMarshalJSON(t *testing.T) {
	sub := nbt.NewCompoundTag()
	sub.SetString("ip", "localhost:25565")
	sub.SetBool("hideAddress", true)

	ct := nbt.NewCompoundTag()
	ct.SetInt("count", 1)
	ct.SetDouble("ratio", 0.5)
	ct.SetList("servers", sub)
	ct.SetIntArray("ids", []int32{1, 2})

	data, err := ct.MarshalJSON()
	require.NoError(t, err)
	require.Equal(
		t,
		`{"count": 1, "ratio": 0.5, "servers": [{"ip": "localhost:25565", "hideAddress": 1}], "ids": [1, 2]}`,
		string(data),
	)
}

func TestCompoundTagUnmarshalJSON(t *testing.T) {
	ct := testutil.MakeCompound(t, `{
		"name": "spawn",
		"x": 10,
		"y": -64,
		"big": 10000000000,
		"ratio": 0.5,
		"enabled": true,
		"tags": ["a", "b"],
		"meta": {"depth": 3}
	}`)

	name, err := ct.GetString("name")
	require.NoError(t, err)
	require.Equal(t, "spawn", name)

	x, err := ct.GetInt("x")
	require.NoError(t, err)
	require.Equal(t, int32(10), x)

	big, err := ct.GetLong("big")
	require.NoError(t, err)
	require.Equal(t, int64(10000000000), big)

	ratio, err := ct.GetDouble("ratio")
	require.NoError(t, err)
	require.Equal(t, 0.5, ratio)

	enabled, err := ct.GetBool("enabled")
	require.NoError(t, err)
	require.True(t, enabled)

	tags, err := ct.GetList("tags")
	require.NoError(t, err)
	require.Equal(t, nbt.NewListTag(nbt.NewStringTag("a"), nbt.NewStringTag("b")), tags)

	meta, err := ct.GetCompound("meta")
	require.NoError(t, err)
	depth, err := meta.GetInt("depth")
	require.NoError(t, err)
	require.Equal(t, int32(3), depth)
}

func TestCompoundTagUnmarshalJSONNull(t *testing.T) {
	ct := nbt.NewCompoundTag()
	err := ct.UnmarshalJSON([]byte(`{"a": null}`))
	require.Error(t, err)
}

func TestJSONRoundTripThroughWire(t *testing.T) {
	ct := testutil.MakeCompound(t, `{"a": 1, "b": "two", "c": {"d": [1, 2, 3]}}`)

	testutil.RequireTreeEqual(t, ct, roundTrip(t, ct))
}
