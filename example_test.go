package jsonmap_test

import (
	"context"
	"fmt"

	"github.com/attrkit/jsonmap"
	"github.com/attrkit/jsonmap/adapter/attrstore"
	"github.com/attrkit/jsonmap/domain"
)

func Example() {
	m, err := jsonmap.New()
	if err != nil {
		panic(err)
	}

	mappings := []domain.Mapping{{
		Name: "Reply-Message",
		Type: domain.TypeString,
		Op:   domain.OpSet,
		RHS:  domain.RHS{Kind: domain.RHSStatic, Text: "$.msg"},
	}}
	cache, err := m.Instantiate(mappings)
	if err != nil {
		panic(err)
	}

	sink, err := attrstore.NewStore()
	if err != nil {
		panic(err)
	}
	ctx := context.Background()

	result := m.Evaluate(ctx, cache, `{"msg":"hello"}`, mappings, sink)
	values, err := sink.Resolve(ctx, "Reply-Message")
	if err != nil {
		panic(err)
	}
	fmt.Println(result, values[0].Data)
	// Output: updated hello
}

func ExampleModule_Encode() {
	store, err := attrstore.NewStore(
		domain.Value{Name: "User-Name", Type: domain.TypeString, Data: "bob"},
		domain.Value{Name: "User-Password", Type: domain.TypeString, Data: "hunter2"},
	)
	if err != nil {
		panic(err)
	}

	m, err := jsonmap.New(
		jsonmap.WithFormat(domain.Format{Mode: domain.ModeObjectSimple}),
		jsonmap.WithProvider(store),
	)
	if err != nil {
		panic(err)
	}

	out, err := m.Encode(context.Background(), "User-Name !User-Password")
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: {"User-Name":"bob"}
}

func ExampleModule_Validate() {
	m, err := jsonmap.New()
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Validate("$.msg[0]"))
	fmt.Println(m.Validate("$msg"))
	// Output:
	// 8:$.msg[0]
	// 1:expected '.' or '['
}
