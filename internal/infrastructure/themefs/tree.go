package themefs

import (
	"os"
	"path/filepath"
)

// Node is one entry in a theme directory listing. Path is relative to the
// listed root, using forward slashes. Entries appear in readdir order, which
// is platform-defined.
type Node struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Path         string  `json:"path"`
	Size         *int64  `json:"size,omitempty"`
	LastModified *int64  `json:"last_modified,omitempty"`
	Children     []*Node `json:"children,omitempty"`
}

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"
)

// BuildTree walks root recursively and returns its children as a tree.
func BuildTree(root string) ([]*Node, error) {
	return buildLevel(root, "")
}

func buildLevel(dir, relPrefix string) ([]*Node, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	nodes := make([]*Node, 0, len(entries))
	for _, entry := range entries {
		rel := entry.Name()
		if relPrefix != "" {
			rel = relPrefix + "/" + entry.Name()
		}

		if entry.IsDir() {
			children, err := buildLevel(filepath.Join(dir, entry.Name()), rel)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &Node{
				Name:     entry.Name(),
				Type:     NodeTypeDirectory,
				Path:     rel,
				Children: children,
			})
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		size := info.Size()
		modified := info.ModTime().UnixMilli()
		nodes = append(nodes, &Node{
			Name:         entry.Name(),
			Type:         NodeTypeFile,
			Path:         rel,
			Size:         &size,
			LastModified: &modified,
		})
	}

	return nodes, nil
}
