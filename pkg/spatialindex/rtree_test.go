package spatialindex_test

import (
	"testing"

	"github.com/arclab-robotics/gridsearch/pkg/geometry"
	"github.com/arclab-robotics/gridsearch/pkg/spatialindex"
)

func TestNearestFindsClosestVertex(t *testing.T) {
	idx := spatialindex.NewIndex()
	idx.Insert(0, geometry.NewPoint(0, 0))
	idx.Insert(1, geometry.NewPoint(10, 0))
	idx.Insert(2, geometry.NewPoint(10, 10))

	id, ok := idx.Nearest(geometry.NewPoint(9, 1), 50)
	if !ok {
		t.Fatal("Nearest() ok = false, want true")
	}
	if id != 1 {
		t.Errorf("Nearest() = %d, want 1", id)
	}
}

func TestNearestReportsNotFoundBeyondRadius(t *testing.T) {
	idx := spatialindex.NewIndex()
	idx.Insert(0, geometry.NewPoint(0, 0))

	if _, ok := idx.Nearest(geometry.NewPoint(1000, 1000), 4); ok {
		t.Error("Nearest() ok = true, want false beyond maxRadius")
	}
}

func TestSearchWithinRadius(t *testing.T) {
	idx := spatialindex.NewIndex()
	idx.Insert(0, geometry.NewPoint(0, 0))
	idx.Insert(1, geometry.NewPoint(1, 0))
	idx.Insert(2, geometry.NewPoint(100, 100))

	got := idx.SearchWithinRadius(geometry.NewPoint(0, 0), 2)
	if len(got) != 2 {
		t.Errorf("SearchWithinRadius() = %v, want 2 results", got)
	}
}
