// Package tree turns the flat post list of a thread into its reply forest.
package tree

import (
	"fmt"

	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	pkgErrors "github.com/pkg/errors"
)

// OrphanPolicy decides what happens to a post whose parent is not in the list.
// Posts sitting on a parent cycle are handled the same way.
type OrphanPolicy string

const (
	// OrphanPromote makes the orphan an extra root at depth 0.
	OrphanPromote OrphanPolicy = "promote"
	// OrphanDrop leaves the orphan and its replies out of the forest.
	OrphanDrop OrphanPolicy = "drop"
	// OrphanReject fails the whole build.
	OrphanReject OrphanPolicy = "reject"
)

func ParseOrphanPolicy(s string) (OrphanPolicy, error) {
	switch OrphanPolicy(s) {
	case "":
		return OrphanPromote, nil
	case OrphanPromote, OrphanDrop, OrphanReject:
		return OrphanPolicy(s), nil
	}
	return "", fmt.Errorf(errors.UNKNOWN_ORPHAN_POLICY+"%q", s)
}

// Build nests posts under their parents. Roots and siblings keep input order.
// An empty policy means OrphanPromote.
func Build(posts []models.Post, policy OrphanPolicy) ([]*models.PostNode, error) {
	if policy == "" {
		policy = OrphanPromote
	}
	index := make(map[string]int, len(posts))
	for i, post := range posts {
		if _, ok := index[post.Id]; ok {
			return nil, pkgErrors.Wrap(errors.ErrDuplicatePost, post.Id)
		}
		index[post.Id] = i
	}

	children := make(map[string][]int, len(posts))
	rootIdx := make([]int, 0, 1)
	for i, post := range posts {
		if post.IsRoot() {
			rootIdx = append(rootIdx, i)
			continue
		}
		if _, ok := index[post.ParentId]; ok {
			children[post.ParentId] = append(children[post.ParentId], i)
			continue
		}
		switch policy {
		case OrphanReject:
			return nil, pkgErrors.Wrap(errors.ErrOrphanPost, post.Id)
		case OrphanPromote:
			rootIdx = append(rootIdx, i)
		}
	}

	visited := make([]bool, len(posts))
	roots := make([]*models.PostNode, 0, len(rootIdx))
	for _, i := range rootIdx {
		roots = append(roots, assemble(posts, children, visited, i))
	}

	// whatever is still unvisited sits on a parent cycle, hangs off one, or
	// hangs off a dropped orphan
	for i := range posts {
		if visited[i] {
			continue
		}
		switch policy {
		case OrphanReject:
			return nil, pkgErrors.Wrap(errors.ErrCyclicPost, posts[i].Id)
		case OrphanPromote:
			roots = append(roots, assemble(posts, children, visited, cycleHead(posts, index, i)))
		}
	}
	return roots, nil
}

// cycleHead follows parent links from post i until they loop and returns the
// earliest post of that loop. Every post on the way must have its parent in index.
func cycleHead(posts []models.Post, index map[string]int, i int) int {
	seen := make(map[int]bool)
	for !seen[i] {
		seen[i] = true
		i = index[posts[i].ParentId]
	}
	head := i
	for j := index[posts[i].ParentId]; j != i; j = index[posts[j].ParentId] {
		if j < head {
			head = j
		}
	}
	return head
}

type frame struct {
	node  *models.PostNode
	depth int
}

func assemble(posts []models.Post, children map[string][]int, visited []bool, rootIdx int) *models.PostNode {
	visited[rootIdx] = true
	root := &models.PostNode{Post: posts[rootIdx]}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		top.node.Depth = top.depth
		for _, ci := range children[top.node.Id] {
			if visited[ci] {
				continue
			}
			visited[ci] = true
			child := &models.PostNode{Post: posts[ci]}
			top.node.Children = append(top.node.Children, child)
			stack = append(stack, frame{node: child, depth: top.depth + 1})
		}
	}
	return root
}

// Flatten walks the forest in display order and returns childless copies of the nodes.
func Flatten(roots []*models.PostNode) []*models.PostNode {
	flat := make([]*models.PostNode, 0, Count(roots))
	stack := make([]*models.PostNode, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		flat = append(flat, &models.PostNode{Post: node.Post, Depth: node.Depth})
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
	return flat
}

func Count(roots []*models.PostNode) int {
	n := 0
	stack := append([]*models.PostNode(nil), roots...)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		stack = append(stack, node.Children...)
	}
	return n
}
