package nbt_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/nbtcodec/nbt"
)

func ExampleWriteCompoundTag() {
	server := nbt.NewCompoundTag()
	server.SetString("ip", "localhost:25565")
	server.SetString("name", "Minecraft Server")
	server.SetBool("hideAddress", true)

	root := nbt.NewCompoundTag()
	root.SetList("servers", server)

	var buf bytes.Buffer
	if err := nbt.WriteCompoundTag(&buf, root); err != nil {
		log.Fatal(err)
	}

	decoded, err := nbt.ReadCompoundTag(&buf)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(decoded)
	// Output: {"servers": [{"ip": "localhost:25565", "name": "Minecraft Server", "hideAddress": 1}]}
}

func ExampleCompoundTag_Get() {
	ct := nbt.NewNamedCompoundTag("hello world")
	ct.SetString("name", "Bananrama")

	v, err := ct.Get("name")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(nbt.AsString(v))
	// Output: Bananrama
}
