// Package styles resolves late-bound style references and builds shared
// styles for generated documents.
package styles

import (
	"strings"

	"kmlstream/pkg/kml"
)

// maxHops bounds styleUrl chains through StyleMap pairs. KML allows a pair
// to point at another StyleMap, and documents with cycles exist.
const maxHops = 8

// Resolver looks up shared styles by document-local reference.
type Resolver struct {
	shared map[string]kml.StyleSelector
}

// NewResolver builds a resolver over an id index such as kmlread.Result.Styles.
func NewResolver(shared map[string]kml.StyleSelector) *Resolver {
	if shared == nil {
		shared = map[string]kml.StyleSelector{}
	}
	return &Resolver{shared: shared}
}

// Collect indexes the identified style selectors of f and its descendants.
func Collect(f kml.Feature) map[string]kml.StyleSelector {
	m := map[string]kml.StyleSelector{}
	kml.Walk(f, func(f kml.Feature) {
		for _, s := range f.Common().StyleSelectors {
			if id := s.Attributes().ID; id != "" {
				m[id] = s
			}
		}
	})
	return m
}

func localID(url string) (string, bool) {
	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, "#") || len(url) == 1 {
		return "", false
	}
	return url[1:], true
}

// Resolve returns the Style a styleUrl points at. A StyleMap target
// resolves through its normal pair.
func (r *Resolver) Resolve(url string) (*kml.Style, bool) {
	return r.ResolvePair(url, kml.StyleStateNormal)
}

// ResolvePair follows url and, for StyleMap targets, the pair matching key.
// Only references into the same document ("#id") are resolved.
func (r *Resolver) ResolvePair(url string, key kml.StyleState) (*kml.Style, bool) {
	return r.resolve(url, key, 0)
}

func (r *Resolver) resolve(url string, key kml.StyleState, hops int) (*kml.Style, bool) {
	if hops > maxHops {
		return nil, false
	}
	id, ok := localID(url)
	if !ok {
		return nil, false
	}
	return r.selector(r.shared[id], key, hops)
}

func (r *Resolver) selector(s kml.StyleSelector, key kml.StyleState, hops int) (*kml.Style, bool) {
	switch v := s.(type) {
	case *kml.Style:
		return v, true
	case *kml.StyleMap:
		for _, p := range v.Pairs {
			if p.Key != key {
				continue
			}
			if p.StyleSelector != nil {
				return r.selector(p.StyleSelector, key, hops+1)
			}
			return r.resolve(p.StyleURL, key, hops+1)
		}
	}
	return nil, false
}

// Effective computes the style applied to f in state key: the shared
// style named by its styleUrl, overridden sub-style by sub-style by any
// inline selectors. The returned Style is a fresh value; nil means no
// style applies.
func (r *Resolver) Effective(f kml.Feature, key kml.StyleState) *kml.Style {
	fd := f.Common()
	var out *kml.Style
	if s, ok := r.ResolvePair(fd.StyleURL, key); ok {
		out = merge(out, s)
	}
	for _, sel := range fd.StyleSelectors {
		if s, ok := r.selector(sel, key, 0); ok {
			out = merge(out, s)
		}
	}
	return out
}

func merge(dst, src *kml.Style) *kml.Style {
	if dst == nil {
		dst = &kml.Style{}
	}
	if src.IconStyle != nil {
		dst.IconStyle = src.IconStyle
	}
	if src.LabelStyle != nil {
		dst.LabelStyle = src.LabelStyle
	}
	if src.LineStyle != nil {
		dst.LineStyle = src.LineStyle
	}
	if src.PolyStyle != nil {
		dst.PolyStyle = src.PolyStyle
	}
	if src.BalloonStyle != nil {
		dst.BalloonStyle = src.BalloonStyle
	}
	if src.ListStyle != nil {
		dst.ListStyle = src.ListStyle
	}
	return dst
}
