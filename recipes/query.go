package recipes

import "go.mongodb.org/mongo-driver/bson"

// Filters is the resolved filter set for a recipe listing. Slice fields
// follow one convention: nil means the filter was not requested, a
// non-nil empty slice means it was requested but nothing qualifies (the
// listing must come back empty).
type Filters struct {
	AuthorID string
	TagIDs   []string   // recipes carrying at least one of these tags (OR)
	IDSets   [][]string // each set restricts recipe ids to membership in it
}

// BuildListQuery turns a resolved filter set into a Mongo query. Pure:
// membership lookups (favorites, cart, tag slugs) happen before this and
// are passed in resolved, so anonymous callers simply arrive with nil
// sets and get the unfiltered listing.
func BuildListQuery(f Filters) bson.M {
	query := bson.M{}

	if f.AuthorID != "" {
		query["authorid"] = f.AuthorID
	}
	if f.TagIDs != nil {
		query["tagids"] = bson.M{"$in": f.TagIDs}
	}

	switch len(f.IDSets) {
	case 0:
	case 1:
		query["recipeid"] = bson.M{"$in": f.IDSets[0]}
	default:
		ids := f.IDSets[0]
		for _, set := range f.IDSets[1:] {
			ids = intersect(ids, set)
		}
		query["recipeid"] = bson.M{"$in": ids}
	}

	return query
}

func intersect(a, b []string) []string {
	seen := make(map[string]bool, len(b))
	for _, id := range b {
		seen[id] = true
	}
	out := []string{}
	for _, id := range a {
		if seen[id] {
			out = append(out, id)
		}
	}
	return out
}
