package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Natali-Skv/forum_board/internal/app"
	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/post/tree"
	"github.com/fatih/color"
)

const previewLength = 60

var depthColors = []*color.Color{
	color.New(color.FgCyan, color.Bold),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
}

func printThread(w io.Writer, repos app.Repos, threadId string, policy tree.OrphanPolicy) error {
	thread, err := repos.Threads.GetByID(threadId)
	if err != nil {
		return err
	}
	posts, err := repos.Posts.GetThreadPosts(threadId)
	if err != nil {
		return err
	}
	roots, err := tree.Build(posts, policy)
	if err != nil {
		return err
	}

	color.New(color.Bold).Fprintf(w, "%s\n", thread.Title)
	fmt.Fprintf(w, "%d replies, %d upvotes\n", thread.ReplyCount, thread.Upvotes)
	printTree(w, roots)
	return nil
}

func printTree(w io.Writer, roots []*models.PostNode) {
	for _, node := range tree.Flatten(roots) {
		c := depthColors[node.Depth%len(depthColors)]
		c.Fprintf(w, "%s%s", strings.Repeat("  ", node.Depth), node.AuthorId)
		fmt.Fprintf(w, " [%d] %s\n", node.Upvotes, preview(node.Content))
	}
}

func preview(content string) string {
	content = strings.Join(strings.Fields(content), " ")
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength-3]) + "..."
}
