package poi

import (
	"strings"
)

// Compile translates a filter into a bounded geospatial tag-query. It fails
// with ErrNotSearchable when the filter has no center or no category/mode
// selection. Compilation is pure and deterministic: identical filter state
// yields a byte-identical QuerySpec.
func Compile(f *Filter) (QuerySpec, error) {
	if !f.IsSearchable() {
		return QuerySpec{}, ErrNotSearchable
	}

	var expr strings.Builder
	expr.WriteString(baseExpression(f))
	for _, af := range f.ActiveAmenities() {
		if af.ClientSide() {
			continue
		}
		expr.WriteString(af.Clause)
	}

	return QuerySpec{
		TagExpression: expr.String(),
		Center:        *f.Center(),
		RadiusMeters:  f.RadiusMeters(),
	}, nil
}

// baseExpression resolves the category/mode selection into the base tag
// expression. Amenity clauses are appended to it; they narrow, never broaden,
// the candidate set.
func baseExpression(f *Filter) string {
	switch f.Mode() {
	case ModeVendingOnly:
		return `"vending"=*`
	case ModeChainOnly:
		return chainExpression()
	default:
		tags := make([]string, 0, len(f.Categories()))
		for _, id := range f.Categories() {
			c, _ := CategoryByID(id)
			tags = append(tags, `"`+escapeLiteral(c.Tag)+`"`)
		}
		return strings.Join(tags, " ")
	}
}

// chainExpression builds the chain-only base: a disjunction over the chain
// registry, each name matched against brand/name and their :en/:ja variants,
// ANDed with the convenience category so an incidental name match on another
// shop type is excluded.
func chainExpression() string {
	conditions := make([]string, 0, len(ConvenienceChains))
	for _, chain := range ConvenienceChains {
		name := escapeLiteral(chain)
		variants := make([]string, 0, len(chainNameTags))
		for _, key := range chainNameTags {
			variants = append(variants, `["`+key+`"="`+name+`"]`)
		}
		conditions = append(conditions, strings.Join(variants, " OR "))
	}
	return `shop=convenience AND (` + strings.Join(conditions, " OR ") + `)`
}

// escapeLiteral escapes a value for insertion into a quoted query literal.
// Registry values are trusted, but the discipline is applied regardless.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
