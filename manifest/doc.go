// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package manifest classifies raw configuration documents into entries and
// resolves those entries against the process environment.
//
// # Classification
//
// Every node of a raw document is classified into exactly one [Entry]:
//
//   - [Literal] for anything which is not a table. Arrays are never looked into.
//   - [Linked] for a table holding the reserved key "env". The optional reserved
//     key "default" provides the fallback value and every other key is ignored.
//   - [Nested] for any other table, whose children are classified recursively.
//
// For example, the following TOML document
//
//	name = "svc"
//
//	[db]
//	host = "localhost"
//	port = { env = "DB_PORT", default = 5432 }
//
// classifies "name" and "db.host" as literals, "db" as nested and "db.port" as
// linked to the DB_PORT environment variable.
//
// There is no escape for a table which legitimately needs a field named "env".
//
// # Resolution
//
// [Resolver.Resolve] turns a [Manifest] into a concrete [value.Table]. A linked
// entry resolves to:
//
//   - the environment variable, coerced to the kind of its default when one exists
//   - the default verbatim, when the variable is unset
//   - nothing at all, when both are missing. The key is omitted so that an
//     optional field in the decoded structure stays absent; a required field
//     fails later at decode time.
//
// # Coercion
//
// With a default present, environment strings are parsed strictly as the default's
// kind, see [Coerce]. Without one they are parsed blindly, trying boolean, integer,
// float, array and table in that order before falling back to the raw string.
package manifest
