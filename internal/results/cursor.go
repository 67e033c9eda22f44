package results

// Next moves the cursor to the following item row, skipping any header rows
// in between. The cursor stays put when no item row follows it.
func (l *List) Next() bool {
	if l.IsEmpty() || l.cursor == noCursor {
		return false
	}
	for pos := l.cursor + 1; pos < l.total; pos++ {
		if !l.isHeader(pos) {
			l.cursor = pos
			return true
		}
	}
	return false
}

// Previous moves the cursor to the preceding item row, skipping header rows.
// The cursor stays put on the first item row.
func (l *List) Previous() bool {
	if l.IsEmpty() || l.cursor == noCursor {
		return false
	}
	for pos := l.cursor - 1; pos > 0; pos-- {
		if !l.isHeader(pos) {
			l.cursor = pos
			return true
		}
	}
	return false
}

// First moves the cursor to the first item row.
func (l *List) First() bool {
	for k, g := range l.groups {
		if len(g.Items) > 0 {
			return l.moveTo(l.offsets[k] + 1)
		}
	}
	return false
}

// Last moves the cursor to the last item row.
func (l *List) Last() bool {
	for k := len(l.groups) - 1; k >= 0; k-- {
		if n := len(l.groups[k].Items); n > 0 {
			return l.moveTo(l.offsets[k] + n)
		}
	}
	return false
}

// NextGroup moves the cursor to the first item of the next group that has
// any items. A cursor resting on a header counts as being before that
// header's group.
func (l *List) NextGroup() bool {
	if l.IsEmpty() || l.cursor == noCursor {
		return false
	}
	start := l.owner(l.cursor)
	if row, ok := l.RowAt(l.cursor); ok && row.Kind == RowItem {
		start++
	}
	for k := start; k < len(l.groups); k++ {
		if len(l.groups[k].Items) > 0 {
			return l.moveTo(l.offsets[k] + 1)
		}
	}
	return false
}

// PreviousGroup moves the cursor to the first item of the nearest preceding
// group that has any items.
func (l *List) PreviousGroup() bool {
	if l.IsEmpty() || l.cursor == noCursor {
		return false
	}
	for k := l.owner(l.cursor) - 1; k >= 0; k-- {
		if len(l.groups[k].Items) > 0 {
			return l.moveTo(l.offsets[k] + 1)
		}
	}
	return false
}

func (l *List) moveTo(pos int) bool {
	old := l.cursor
	l.cursor = pos
	return old != pos
}

// EnsureCursorVisible returns a viewport offset, adjusted from offset, that
// keeps the cursor inside a window of maxVisible rows.
func (l *List) EnsureCursorVisible(maxVisible, offset int) int {
	if l.total == 0 || maxVisible <= 0 {
		return 0
	}
	maxOffset := l.total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if l.cursor == noCursor {
		return offset
	}
	// keep the owning header on screen when the cursor is its first item
	if maxVisible >= 2 && l.cursor-1 < offset && l.isHeader(l.cursor-1) {
		return clampOffset(l.cursor-1, maxOffset)
	}
	if l.cursor < offset {
		return clampOffset(l.cursor, maxOffset)
	}
	if upper := offset + maxVisible - 1; l.cursor > upper {
		offset = l.cursor - maxVisible + 1
	}
	return clampOffset(offset, maxOffset)
}

func clampOffset(offset, maxOffset int) int {
	if offset > maxOffset {
		return maxOffset
	}
	if offset < 0 {
		return 0
	}
	return offset
}
