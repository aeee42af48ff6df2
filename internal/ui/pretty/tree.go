package pretty

import (
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/jeertmans/untex/pkg/latex/deps"
)

// DependencyTree renders a dependency tree, grouping each file's
// dependencies by kind (TeX, Image, Listing, Other).
func DependencyTree(root *deps.Dependency, styles *Styles) string {
	t := tree.Root(styles.TreeRoot.Render(root.Path))
	addGroups(t, root, styles)
	return t.String()
}

func addGroups(t *tree.Tree, d *deps.Dependency, styles *Styles) {
	groups := d.GroupByKind()
	for _, kind := range d.Kinds() {
		group := tree.Root(styles.TreeGroup.Render(kind.String()))
		for _, child := range groups[kind] {
			label := child.Path
			if child.Language != "" {
				label += " " + styles.TreeLang.Render("("+child.Language+")")
			}
			if len(child.Children) > 0 {
				sub := tree.Root(label)
				addGroups(sub, child, styles)
				group.Child(sub)
			} else {
				group.Child(label)
			}
		}
		t.Child(group)
	}
}
