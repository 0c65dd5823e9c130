package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type parent struct {
	id   int64
	name string
}

type child struct {
	parentID int64
	score    float64
}

func TestJoinSortedChildren_KeepsChildOrder(t *testing.T) {
	parents := []parent{{1, "a"}, {2, "b"}, {3, "c"}}
	children := []child{{3, 90}, {1, 70}, {2, 50}}

	got := joinSortedChildren(children, parents,
		func(c child) int64 { return c.parentID },
		func(p parent) int64 { return p.id },
		func(c child, p parent) string { return p.name },
	)

	assert.Equal(t, []string{"c", "a", "b"}, got)
}

func TestJoinSortedChildren_DropsDanglingChildren(t *testing.T) {
	parents := []parent{{1, "a"}}
	children := []child{{1, 70}, {99, 80}}

	got := joinSortedChildren(children, parents,
		func(c child) int64 { return c.parentID },
		func(p parent) int64 { return p.id },
		func(c child, p parent) string { return p.name },
	)

	assert.Equal(t, []string{"a"}, got)
}

func TestJoinSortedChildren_EmptyInputs(t *testing.T) {
	got := joinSortedChildren(nil, []parent{{1, "a"}},
		func(c child) int64 { return c.parentID },
		func(p parent) int64 { return p.id },
		func(c child, p parent) string { return p.name },
	)
	assert.Empty(t, got)
}
