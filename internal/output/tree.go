package output

import (
	"path"
	"slices"
	"strings"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentBar  = "│   "
	indentNone = "    "
)

// dirEntry is one directory of a generated project.
type dirEntry struct {
	dirs  map[string]*dirEntry
	files []string
}

func newDirEntry() *dirEntry {
	return &dirEntry{dirs: map[string]*dirEntry{}}
}

func (d *dirEntry) add(p string) {
	dir, file := path.Split(path.Clean(p))
	cur := d
	for _, name := range strings.Split(strings.Trim(dir, "/"), "/") {
		if name == "" {
			continue
		}
		next, ok := cur.dirs[name]
		if !ok {
			next = newDirEntry()
			cur.dirs[name] = next
		}
		cur = next
	}
	if !slices.Contains(cur.files, file) {
		cur.files = append(cur.files, file)
	}
}

// RenderProjectTree draws the files of a generated project below root.
// Paths are slash separated and relative to root. Directories are listed
// before files, each group sorted by name.
func RenderProjectTree(root string, files []string) string {
	if len(files) == 0 {
		return ""
	}

	top := newDirEntry()
	for _, f := range files {
		top.add(f)
	}

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(root + "/"))
	sb.WriteString("\n")
	writeDir(&sb, top, "")
	return sb.String()
}

func writeDir(sb *strings.Builder, d *dirEntry, indent string) {
	dirs := make([]string, 0, len(d.dirs))
	for name := range d.dirs {
		dirs = append(dirs, name)
	}
	slices.Sort(dirs)
	files := slices.Sorted(slices.Values(d.files))

	total := len(dirs) + len(files)
	for i, name := range dirs {
		last := i == total-1
		sb.WriteString(indent + branch(last) + name + "/\n")
		child := indentBar
		if last {
			child = indentNone
		}
		writeDir(sb, d.dirs[name], indent+child)
	}
	for i, name := range files {
		sb.WriteString(indent + branch(len(dirs)+i == total-1) + name + "\n")
	}
}

func branch(last bool) string {
	if last {
		return branchLast
	}
	return branchMid
}
