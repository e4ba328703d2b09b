package tree_test

import (
	"fmt"
	"testing"

	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/post/tree"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	pkgErrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(id, parent string) models.Post {
	return models.Post{Id: id, ParentId: parent, ThreadId: "t1", AuthorId: "u1", Content: "post " + id}
}

func ids(nodes []*models.PostNode) []string {
	res := make([]string, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, n.Id)
	}
	return res
}

func depths(nodes []*models.PostNode) map[string]int {
	res := map[string]int{}
	for _, n := range tree.Flatten(nodes) {
		res[n.Id] = n.Depth
	}
	return res
}

func TestBuildChain(t *testing.T) {
	roots, err := tree.Build([]models.Post{post("A", ""), post("B", "A"), post("C", "B")}, tree.OrphanPromote)
	require.NoError(t, err)

	require.Len(t, roots, 1)
	assert.Equal(t, "A", roots[0].Id)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "B", roots[0].Children[0].Id)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, "C", roots[0].Children[0].Children[0].Id)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, depths(roots))
}

func TestBuildKeepsSiblingOrder(t *testing.T) {
	posts := []models.Post{
		post("p1", ""),
		post("p2", "p1"),
		post("p3", "p1"),
		post("p4", "p2"),
		post("p5", "p1"),
		post("p6", "p4"),
	}
	roots, err := tree.Build(posts, tree.OrphanPromote)
	require.NoError(t, err)

	require.Len(t, roots, 1)
	assert.Equal(t, []string{"p2", "p3", "p5"}, ids(roots[0].Children))
	assert.Equal(t, []string{"p1", "p2", "p4", "p6", "p3", "p5"}, ids(tree.Flatten(roots)))
	assert.Equal(t, map[string]int{"p1": 0, "p2": 1, "p3": 1, "p4": 2, "p5": 1, "p6": 3}, depths(roots))
}

func TestBuildEveryPostOnce(t *testing.T) {
	// a parent is always an earlier post, so every list here is complete
	for n := 0; n < 60; n++ {
		posts := make([]models.Post, 0, n)
		for i := 0; i < n; i++ {
			parent := ""
			if i > 0 {
				parent = fmt.Sprintf("p%d", (i*7+3)%i)
			}
			posts = append(posts, post(fmt.Sprintf("p%d", i), parent))
		}
		roots, err := tree.Build(posts, tree.OrphanReject)
		require.NoError(t, err)
		assert.Equal(t, n, tree.Count(roots))

		seen := map[string]int{}
		for _, node := range tree.Flatten(roots) {
			seen[node.Id]++
		}
		assert.Len(t, seen, n)
		for id, times := range seen {
			assert.Equal(t, 1, times, id)
		}
	}
}

func TestBuildDepthIsParentHops(t *testing.T) {
	posts := []models.Post{post("a", ""), post("b", "a"), post("c", "a"), post("d", "c"), post("e", "d"), post("f", "b")}
	roots, err := tree.Build(posts, tree.OrphanPromote)
	require.NoError(t, err)

	parent := map[string]string{}
	for _, p := range posts {
		parent[p.Id] = p.ParentId
	}
	for id, depth := range depths(roots) {
		hops := 0
		for cur := parent[id]; cur != ""; cur = parent[cur] {
			hops++
		}
		assert.Equal(t, hops, depth, id)
	}
}

func TestBuildOrphans(t *testing.T) {
	posts := []models.Post{post("r", ""), post("o", "missing"), post("oc", "o"), post("rc", "r")}

	t.Run("promote", func(t *testing.T) {
		roots, err := tree.Build(posts, tree.OrphanPromote)
		require.NoError(t, err)
		assert.Equal(t, []string{"r", "o"}, ids(roots))
		assert.Equal(t, map[string]int{"r": 0, "rc": 1, "o": 0, "oc": 1}, depths(roots))
	})

	t.Run("drop", func(t *testing.T) {
		roots, err := tree.Build(posts, tree.OrphanDrop)
		require.NoError(t, err)
		assert.Equal(t, []string{"r", "rc"}, ids(tree.Flatten(roots)))
	})

	t.Run("reject", func(t *testing.T) {
		_, err := tree.Build(posts, tree.OrphanReject)
		require.Error(t, err)
		assert.Equal(t, errors.ErrOrphanPost, pkgErrors.Cause(err))
		assert.Contains(t, err.Error(), "o: ")
	})
}

func TestBuildCycles(t *testing.T) {
	posts := []models.Post{post("r", ""), post("x", "y"), post("y", "x"), post("z", "y"), post("self", "self")}

	t.Run("promote", func(t *testing.T) {
		roots, err := tree.Build(posts, tree.OrphanPromote)
		require.NoError(t, err)
		assert.Equal(t, []string{"r", "x", "self"}, ids(roots))
		assert.Equal(t, 5, tree.Count(roots))
		assert.Equal(t, map[string]int{"r": 0, "x": 0, "y": 1, "z": 2, "self": 0}, depths(roots))
	})

	t.Run("drop", func(t *testing.T) {
		roots, err := tree.Build(posts, tree.OrphanDrop)
		require.NoError(t, err)
		assert.Equal(t, []string{"r"}, ids(tree.Flatten(roots)))
	})

	t.Run("reject", func(t *testing.T) {
		_, err := tree.Build(posts, tree.OrphanReject)
		assert.Equal(t, errors.ErrCyclicPost, pkgErrors.Cause(err))
	})
}

func TestBuildPromotesCycleMember(t *testing.T) {
	// z only hangs off the x<->y loop and comes first in the input
	posts := []models.Post{post("r", ""), post("z", "y"), post("x", "y"), post("y", "x")}
	roots, err := tree.Build(posts, tree.OrphanPromote)
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "x"}, ids(roots))
	assert.Equal(t, map[string]int{"r": 0, "x": 0, "y": 1, "z": 2}, depths(roots))
	assert.Equal(t, 4, tree.Count(roots))
}

func TestBuildEmptyPolicyPromotes(t *testing.T) {
	posts := []models.Post{post("r", ""), post("o", "missing")}
	roots, err := tree.Build(posts, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "o"}, ids(roots))
}

func TestBuildDuplicate(t *testing.T) {
	_, err := tree.Build([]models.Post{post("a", ""), post("a", "")}, tree.OrphanPromote)
	assert.Equal(t, errors.ErrDuplicatePost, pkgErrors.Cause(err))
}

func TestBuildEmpty(t *testing.T) {
	roots, err := tree.Build(nil, tree.OrphanPromote)
	require.NoError(t, err)
	assert.Empty(t, roots)
	assert.Empty(t, tree.Flatten(roots))
}

func TestFlattenDropsChildren(t *testing.T) {
	roots, err := tree.Build([]models.Post{post("a", ""), post("b", "a")}, tree.OrphanPromote)
	require.NoError(t, err)
	for _, n := range tree.Flatten(roots) {
		assert.Nil(t, n.Children)
	}
	assert.Len(t, roots[0].Children, 1)
}

func TestParseOrphanPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    tree.OrphanPolicy
		wantErr bool
	}{
		{in: "", want: tree.OrphanPromote},
		{in: "promote", want: tree.OrphanPromote},
		{in: "drop", want: tree.OrphanDrop},
		{in: "reject", want: tree.OrphanReject},
		{in: "ignore", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := tree.ParseOrphanPolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
