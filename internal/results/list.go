package results

import "slices"

const noCursor = -1

// List flattens groups into one navigable sequence where every group
// contributes a header row followed by its items. The zero value is not
// usable; construct lists with NewList. A List is not safe for concurrent use.
type List struct {
	groups  []Group
	offsets []int
	total   int
	cursor  int
}

// NewList returns an empty list with no cursor.
func NewList() *List {
	return &List{cursor: noCursor}
}

// AppendGroup adds g after the existing groups and records the flat offset of
// its header. The first group appended places the cursor at position 1.
func (l *List) AppendGroup(g Group) {
	g.Items = cloneItems(g.Items)
	offset := 0
	if n := len(l.groups); n > 0 {
		offset = l.offsets[n-1] + len(l.groups[n-1].Items) + 1
	}
	l.groups = append(l.groups, g)
	l.offsets = append(l.offsets, offset)
	l.total += len(g.Items) + 1
	if len(l.groups) == 1 {
		l.cursor = 1
	}
}

// Reset drops every group and clears the cursor.
func (l *List) Reset() {
	l.groups = nil
	l.offsets = nil
	l.total = 0
	l.cursor = noCursor
}

// IsEmpty reports whether no group has been appended.
func (l *List) IsEmpty() bool {
	return len(l.groups) == 0
}

// Len returns the length of the flat sequence: one header per group plus
// every item.
func (l *List) Len() int {
	return l.total
}

// Groups returns a copy of the appended groups in order.
func (l *List) Groups() []Group {
	if len(l.groups) == 0 {
		return nil
	}
	groups := make([]Group, len(l.groups))
	for i, g := range l.groups {
		groups[i] = NewGroup(g.Name, g.Items...)
	}
	return groups
}

// Offsets returns the flat position of every group header.
func (l *List) Offsets() []int {
	return slices.Clone(l.offsets)
}

// Cursor returns the selected flat position, if any.
func (l *List) Cursor() (int, bool) {
	if l.cursor == noCursor {
		return 0, false
	}
	return l.cursor, true
}

func (l *List) isHeader(pos int) bool {
	_, found := slices.BinarySearch(l.offsets, pos)
	return found
}

// owner returns the index of the group whose header is the greatest offset
// at or below pos.
func (l *List) owner(pos int) int {
	idx, found := slices.BinarySearch(l.offsets, pos)
	if found {
		return idx
	}
	return idx - 1
}
