package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCollect runs the projection scenario: two grandchildren carrying 3 and
// 4 under intermediate children, filter "value above 2", selector "value".
func TestCollect(t *testing.T) {
	root := val(0,
		val(1, val(3)),
		val(2, val(4)),
	)

	got := Collect[int](root, over2{}, valueOf{})
	assert.Equal(t, []int{3, 4}, got, "Matched values should come back in depth-first order")
}

// TestCollectIntoMatchesCollect verifies both collection variants produce
// the same values in the same order for a buffer large enough to hold them.
func TestCollectIntoMatchesCollect(t *testing.T) {
	root := val(0,
		val(5, val(1), val(7)),
		val(3),
	)

	want := Collect[int](root, over2{}, valueOf{})

	buf := make([]int, len(want))
	cursor := CollectInto(root, over2{}, valueOf{}, buf, 0)

	assert.Equal(t, len(want), cursor, "The cursor should advance by the number of matches")
	assert.Equal(t, want, buf[:cursor], "Both variants should produce identical ordered output")
}

// TestCollectIntoStartIndex verifies writes begin at the caller's start
// offset and leave the prefix untouched.
func TestCollectIntoStartIndex(t *testing.T) {
	root := val(0, val(3), val(4))

	buf := []int{-1, -1, -1, -1}
	cursor := CollectInto(root, over2{}, valueOf{}, buf, 1)

	assert.Equal(t, 3, cursor, "Cursor should start at 1 and advance by two matches")
	assert.Equal(t, []int{-1, 3, 4, -1}, buf, "Writes should begin at start and not touch the rest")
}

// TestCollectIntoOverflow verifies an undersized buffer faults at the
// overflowing write instead of truncating.
func TestCollectIntoOverflow(t *testing.T) {
	root := val(0, val(3), val(4))

	buf := make([]int, 1)
	assert.Panics(t, func() {
		CollectInto(root, over2{}, valueOf{}, buf, 0)
	}, "Exceeding the buffer should panic, not truncate")
}

// TestCollectKeyed verifies keyed collection follows insertion order.
func TestCollectKeyed(t *testing.T) {
	root := kdir("root",
		kfile("zeta"),
		kdir("alpha", kfile("inner")),
	)

	got := CollectKeyed[*keyedEntry, string](root, FilesOnly[*keyedEntry]{}, Identity[*keyedEntry]{})
	names := []string{}
	for _, e := range got {
		names = append(names, e.name)
	}
	assert.Equal(t, []string{"zeta", "inner"}, names, "Keyed collection should preserve insertion order")

	buf := make([]*keyedEntry, 2)
	cursor := CollectIntoKeyed[*keyedEntry, string](root, FilesOnly[*keyedEntry]{}, Identity[*keyedEntry]{}, buf, 0)
	assert.Equal(t, 2, cursor, "Cursor should advance by the number of matches")
	assert.Equal(t, got, buf, "Into-buffer output should match the growable output")
}

// TestCollectObservable verifies observable collection, growable and
// into-buffer.
func TestCollectObservable(t *testing.T) {
	root := odir("root", ofile("f1"), odir("sub", ofile("f2")))

	got := CollectObservable[*obsEntry](root, FilesOnly[*obsEntry]{}, Identity[*obsEntry]{})
	names := []string{}
	for _, e := range got {
		names = append(names, e.name)
	}
	assert.Equal(t, []string{"f1", "f2"}, names, "Observable collection in depth-first order")

	buf := make([]*obsEntry, 4)
	cursor := CollectIntoObservable(root, FilesOnly[*obsEntry]{}, Identity[*obsEntry]{}, buf, 2)
	assert.Equal(t, 4, cursor, "Cursor should advance from start by the number of matches")
	assert.Equal(t, got, buf[2:cursor], "Into-buffer output should match the growable output")
}
