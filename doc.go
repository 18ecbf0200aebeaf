// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package konfig loads configuration documents whose entries may be linked
// to environment variables and decodes them into user defined types.
//
// A document is written in TOML, JSON or YAML. Any table holding the reserved
// key "env" is linked to the named environment variable, with the reserved key
// "default" as its fallback:
//
//	profile = { env = "PROFILE" }
//	server_port = { env = "PORT", default = 8080 }
//
//	[postgres]
//	host = "localhost"
//	port = { env = "DATABASE_PORT", default = 5432 }
//
// Loading the document is a single call:
//
//	type Config struct {
//	    Profile    *string `config:"profile"`
//	    ServerPort uint16  `config:"server_port"`
//	    Postgres   struct {
//	        Host string `config:"host"`
//	        Port uint16 `config:"port"`
//	    } `config:"postgres"`
//	}
//
//	cfg, err := konfig.Load[Config](ctx, "config.toml")
//
// Environment variables are coerced into the kind of their default, so
// PORT=9090 decodes as the integer 9090. Variables without a default are
// parsed as booleans, integers, floats, arrays or tables when possible and
// left as strings otherwise.
//
// A linked entry with neither its variable set nor a default is left out of
// the resolved document. Fields which are pointers, slices, maps, interfaces
// or tagged `config:",optional"` are then simply left alone, while any other
// field fails with a [MissingFieldError].
package konfig
