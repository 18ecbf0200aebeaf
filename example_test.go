// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package konfig_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/z5labs/konfig"
	"github.com/z5labs/konfig/document"
	"github.com/z5labs/konfig/env"
)

func ExampleParse() {
	type Config struct {
		Host string `config:"host"`
		Port int    `config:"port"`
	}

	doc := strings.NewReader(`
host = "localhost"
port = { env = "PORT", default = 8080 }
`)

	cfg, err := konfig.Parse[Config](
		context.Background(),
		doc,
		document.TOML,
		konfig.WithEnvironment(env.Map{"PORT": "9090"}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cfg.Host, cfg.Port)
	// Output: localhost 9090
}

func ExampleResolve() {
	doc := strings.NewReader(`{
	"name": "svc",
	"replicas": {"env": "REPLICAS", "default": 1},
	"token": {"env": "TOKEN"}
}`)

	t, err := konfig.Resolve(context.Background(), doc, document.JSON, konfig.WithEnvironment(env.Map{}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(t.Keys())
	// Output: [name replicas]
}
