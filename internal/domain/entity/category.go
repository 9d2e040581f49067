package entity

// Category forms a tree through ParentID; a nil ParentID marks a root node.
// The tree is used for breadcrumb and hierarchy display only.
type Category struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parentId,omitempty"`
	Image    string  `json:"image,omitempty"`
}

// CategoryNode is a category with its resolved children, as returned by the
// hierarchy endpoint.
type CategoryNode struct {
	Category
	Children []*CategoryNode `json:"children,omitempty"`
}

// Breadcrumb walks from the node at slug back to the root and returns the
// path root-first. Returns nil when the slug is not in the tree.
func Breadcrumb(roots []*CategoryNode, slug string) []*Category {
	for _, root := range roots {
		if path := breadcrumbWalk(root, slug, nil); path != nil {
			return path
		}
	}

	return nil
}

func breadcrumbWalk(node *CategoryNode, slug string, trail []*Category) []*Category {
	trail = append(trail, &node.Category)
	if node.Slug == slug {
		out := make([]*Category, len(trail))
		copy(out, trail)

		return out
	}

	for _, child := range node.Children {
		if path := breadcrumbWalk(child, slug, trail); path != nil {
			return path
		}
	}

	return nil
}
