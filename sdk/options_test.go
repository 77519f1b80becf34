package sdk

import (
	"reflect"
	"testing"

	"github.com/soumitsalman/globaldoc/store"
)

func TestListFilters(t *testing.T) {
	filter := store.JSON{}
	for _, opt := range []Option{
		WithStatusFilter(STATUS_PENDING_REVIEW),
		WithEmailFilter("a@b.com"),
		WithMinSeverityFilter(3),
	} {
		opt(filter)
	}

	expected := store.JSON{
		"status":   STATUS_PENDING_REVIEW,
		"email":    "a@b.com",
		"severity": store.JSON{"$gte": 3},
	}
	if !reflect.DeepEqual(filter, expected) {
		t.Fatalf("expected filter %v, got %v", expected, filter)
	}
}
