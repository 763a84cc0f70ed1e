package listadt

import (
	"fmt"

	asciitree "github.com/thediveo/go-asciitree"
)

type treeNode struct {
	Label    string     `asciitree:"label"`
	Props    []string   `asciitree:"properties"`
	Children []treeNode `asciitree:"children"`
}

// RenderTree renders r as an ASCII tree for debugging: a root labelled with
// label and the list size, and one child per element labelled "[i] value".
func RenderTree[T comparable](label string, r Reader[T]) string {
	items := values(r)
	root := treeNode{
		Label: label,
		Props: []string{fmt.Sprintf("size: %d", len(items))},
	}
	for i, v := range items {
		root.Children = append(root.Children, treeNode{Label: fmt.Sprintf("[%d] %v", i, v)})
	}
	return asciitree.RenderFancy(root)
}
