// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package manifest

import (
	"github.com/z5labs/konfig/key"
	"github.com/z5labs/konfig/value"
)

// Link describes a [Linked] entry found within a manifest.
type Link struct {
	Path    key.Chain
	EnvName string
	Default value.Value
}

// HasDefault reports whether the linked entry has a default value.
func (l Link) HasDefault() bool {
	return l.Default.IsValid()
}

// Links returns every linked entry of m, depth first in document order.
func Links(m Manifest) []Link {
	var links []Link
	collectLinks(nil, m, &links)
	return links
}

func collectLinks(path key.Chain, m Manifest, links *[]Link) {
	for _, k := range m.keys {
		p := path.Append(key.Name(k))
		switch x := m.entries[k].(type) {
		case Linked:
			*links = append(*links, Link{
				Path:    p,
				EnvName: x.EnvName,
				Default: x.Default,
			})
		case Nested:
			collectLinks(p, x.Entries, links)
		}
	}
}
