package edgeindex_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/graphaug/edgeindex"
)

// TestNew_Errors verifies shape and domain validation.
func TestNew_Errors(t *testing.T) {
	// ragged columns
	if _, err := edgeindex.New([]int64{0, 1}, []int64{1}); !errors.Is(err, edgeindex.ErrLengthMismatch) {
		t.Errorf("ragged input: want ErrLengthMismatch, got %v", err)
	}
	// negative id
	if _, err := edgeindex.New([]int64{0, -1}, []int64{1, 2}); !errors.Is(err, edgeindex.ErrNegativeNodeID) {
		t.Errorf("negative id: want ErrNegativeNodeID, got %v", err)
	}
}

// TestNew_CopiesInput ensures the index does not alias caller storage.
func TestNew_CopiesInput(t *testing.T) {
	src := []int64{0, 1}
	dst := []int64{1, 2}
	ei, err := edgeindex.New(src, dst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src[0] = 99
	if ei.Src[0] != 0 {
		t.Errorf("index aliases caller slice: Src[0] = %d", ei.Src[0])
	}
}

// TestSortBySource covers ordering, tie-breaking, and non-mutation.
func TestSortBySource(t *testing.T) {
	ei, _ := edgeindex.New([]int64{2, 0, 1, 0}, []int64{0, 2, 2, 1})
	sorted := ei.SortBySource()

	wantSrc := []int64{0, 0, 1, 2}
	wantDst := []int64{1, 2, 2, 0}
	if !reflect.DeepEqual(sorted.Src, wantSrc) || !reflect.DeepEqual(sorted.Dst, wantDst) {
		t.Errorf("sorted = %v; want src=%v dst=%v", sorted, wantSrc, wantDst)
	}
	if !sorted.Sorted() {
		t.Error("Sorted() = false after SortBySource")
	}
	// input untouched
	if ei.Src[0] != 2 {
		t.Errorf("SortBySource mutated receiver: Src[0] = %d", ei.Src[0])
	}
}

// TestDegree checks out-degree counts and node-count validation.
func TestDegree(t *testing.T) {
	ei, _ := edgeindex.New([]int64{0, 0, 1}, []int64{1, 2, 2})
	deg, err := ei.Degree(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int64{2, 1, 0, 0}; !reflect.DeepEqual(deg, want) {
		t.Errorf("Degree = %v; want %v", deg, want)
	}
	// node count too small for source 1
	if _, err = ei.Degree(1); !errors.Is(err, edgeindex.ErrNodeCountTooSmall) {
		t.Errorf("small numNodes: want ErrNodeCountTooSmall, got %v", err)
	}
}

// TestNumNodes covers the hint and the 1+max fallback.
func TestNumNodes(t *testing.T) {
	ei, _ := edgeindex.New([]int64{0, 4}, []int64{2, 1})
	if n := ei.NumNodes(0); n != 5 {
		t.Errorf("NumNodes(0) = %d; want 5", n)
	}
	if n := ei.NumNodes(10); n != 10 {
		t.Errorf("NumNodes(10) = %d; want 10", n)
	}
	empty := &edgeindex.EdgeIndex{}
	if n := empty.NumNodes(0); n != 0 {
		t.Errorf("empty NumNodes(0) = %d; want 0", n)
	}
}

// TestSelect verifies the stable partition contract.
func TestSelect(t *testing.T) {
	ei, _ := edgeindex.New([]int64{0, 1, 2, 3}, []int64{1, 2, 3, 0})
	keep := []bool{true, false, true, false}

	kept, err := ei.Select(keep, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dropped, err := ei.Select(keep, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []int64{0, 2}; !reflect.DeepEqual(kept.Src, want) {
		t.Errorf("kept.Src = %v; want %v", kept.Src, want)
	}
	if want := []int64{1, 3}; !reflect.DeepEqual(dropped.Src, want) {
		t.Errorf("dropped.Src = %v; want %v", dropped.Src, want)
	}
	if kept.NumEdges()+dropped.NumEdges() != ei.NumEdges() {
		t.Error("Select partitions do not cover the index")
	}
	// mask length must cover every column
	if _, err = ei.Select([]bool{true}, true); !errors.Is(err, edgeindex.ErrLengthMismatch) {
		t.Errorf("short mask: want ErrLengthMismatch, got %v", err)
	}
}

// TestToUndirected verifies symmetric closure and duplicate removal.
func TestToUndirected(t *testing.T) {
	// (0,1) plus its reverse already present, and a lone (1,2).
	ei, _ := edgeindex.New([]int64{0, 1, 1}, []int64{1, 0, 2})
	und := ei.ToUndirected()

	if und.NumEdges() != 4 {
		t.Fatalf("NumEdges = %d; want 4", und.NumEdges())
	}
	for i := range und.Src {
		if !und.Contains(und.Dst[i], und.Src[i]) {
			t.Errorf("closure broken: (%d,%d) present without its reverse", und.Src[i], und.Dst[i])
		}
	}
	if !und.Sorted() {
		t.Error("ToUndirected output not source-sorted")
	}
}

// TestCloneAndEqual covers deep copy independence.
func TestCloneAndEqual(t *testing.T) {
	ei, _ := edgeindex.New([]int64{0, 1}, []int64{1, 0})
	cp := ei.Clone()
	if !ei.Equal(cp) {
		t.Fatal("clone not Equal to original")
	}
	cp.Src[0] = 7
	if ei.Equal(cp) {
		t.Error("Equal true after divergent mutation")
	}
	if ei.Src[0] != 0 {
		t.Error("Clone aliases original storage")
	}
}
