package post

import (
	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/post/tree"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	"github.com/Natali-Skv/forum_board/internal/tools/paginate"
	pkgErrors "github.com/pkg/errors"
)

const (
	SortFlat       = "flat"
	SortTree       = "tree"
	SortParentTree = "parent_tree"
)

type ListOptions struct {
	Sort   string
	Desc   bool
	Page   int
	Limit  int
	Policy tree.OrphanPolicy
}

// ListThreadPosts arranges the posts of one thread for display and cuts out
// the requested page.
//
// parent_tree pages over the replies to the original post, each carrying its
// subtree, and repeats the original post on every page. tree pages over the
// whole forest in display order, flat over the posts in creation order.
func ListThreadPosts(thread *models.Thread, posts []models.Post, opts ListOptions) (*models.ThreadPosts, error) {
	if opts.Sort == "" {
		opts.Sort = SortParentTree
	}
	if opts.Sort != SortFlat && opts.Sort != SortTree && opts.Sort != SortParentTree {
		return nil, pkgErrors.Wrap(errors.ErrUnknownSort, opts.Sort)
	}

	roots, err := tree.Build(posts, opts.Policy)
	if err != nil {
		return nil, err
	}

	var original *models.PostNode
	var items []*models.PostNode
	switch opts.Sort {
	case SortParentTree:
		original, items = splitOriginal(roots)
	case SortTree:
		items = tree.Flatten(roots)
	case SortFlat:
		items = chronological(posts, roots)
	}

	if opts.Desc {
		items = paginate.Reverse(items)
	}
	page, err := paginate.Paginate(items, opts.Page, opts.Limit)
	if err != nil {
		return nil, err
	}
	return &models.ThreadPosts{
		Thread:   thread,
		Original: original,
		Sort:     opts.Sort,
		Posts:    page.Items,
		PageInfo: page.PageInfo,
	}, nil
}

// splitOriginal detaches the first real root from the forest. Its replies and
// any other roots make up the top-level list.
func splitOriginal(roots []*models.PostNode) (*models.PostNode, []*models.PostNode) {
	for i, root := range roots {
		if !root.IsRoot() {
			continue
		}
		items := make([]*models.PostNode, 0, len(root.Children)+len(roots)-1)
		items = append(items, root.Children...)
		items = append(items, roots[:i]...)
		items = append(items, roots[i+1:]...)
		return &models.PostNode{Post: root.Post, Depth: root.Depth}, items
	}
	return nil, roots
}

func chronological(posts []models.Post, roots []*models.PostNode) []*models.PostNode {
	depth := make(map[string]int, len(posts))
	for _, node := range tree.Flatten(roots) {
		depth[node.Id] = node.Depth
	}
	items := make([]*models.PostNode, 0, len(depth))
	for _, post := range posts {
		if d, ok := depth[post.Id]; ok {
			items = append(items, &models.PostNode{Post: post, Depth: d})
		}
	}
	return items
}
