package recipes

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildListQueryUnfiltered(t *testing.T) {
	query := BuildListQuery(Filters{})
	if len(query) != 0 {
		t.Errorf("expected empty query, got %v", query)
	}
}

func TestBuildListQueryTagsUnion(t *testing.T) {
	query := BuildListQuery(Filters{TagIDs: []string{"t1", "t2"}})
	want := bson.M{"tagids": bson.M{"$in": []string{"t1", "t2"}}}
	if !reflect.DeepEqual(query, want) {
		t.Errorf("got %v, want %v", query, want)
	}
}

func TestBuildListQueryTagFilterWithNoMatchingTags(t *testing.T) {
	// Requested slugs that resolve to nothing must yield an empty
	// listing, not an unfiltered one.
	query := BuildListQuery(Filters{TagIDs: []string{}})
	want := bson.M{"tagids": bson.M{"$in": []string{}}}
	if !reflect.DeepEqual(query, want) {
		t.Errorf("got %v, want %v", query, want)
	}
}

func TestBuildListQueryAuthor(t *testing.T) {
	query := BuildListQuery(Filters{AuthorID: "u1"})
	if query["authorid"] != "u1" {
		t.Errorf("got %v", query)
	}
}

func TestBuildListQuerySingleMembership(t *testing.T) {
	query := BuildListQuery(Filters{IDSets: [][]string{{"r1", "r2"}}})
	want := bson.M{"recipeid": bson.M{"$in": []string{"r1", "r2"}}}
	if !reflect.DeepEqual(query, want) {
		t.Errorf("got %v, want %v", query, want)
	}
}

func TestBuildListQueryMembershipIntersection(t *testing.T) {
	query := BuildListQuery(Filters{IDSets: [][]string{
		{"r1", "r2", "r3"},
		{"r2", "r3", "r4"},
	}})
	want := bson.M{"recipeid": bson.M{"$in": []string{"r2", "r3"}}}
	if !reflect.DeepEqual(query, want) {
		t.Errorf("got %v, want %v", query, want)
	}
}
