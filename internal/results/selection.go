package results

// Selected resolves the cursor to the owning group's name and the selected
// item's line. It reports false when nothing is selected or the cursor does
// not rest on an item row.
func (l *List) Selected() (string, int, bool) {
	g, item, ok := l.SelectedItem()
	if !ok {
		return "", 0, false
	}
	return g.Name, item.Line, true
}

// SelectedItem is like Selected but returns the full group and item.
func (l *List) SelectedItem() (Group, Item, bool) {
	if l.cursor == noCursor {
		return Group{}, Item{}, false
	}
	row, ok := l.RowAt(l.cursor)
	if !ok || row.Kind != RowItem {
		return Group{}, Item{}, false
	}
	g := l.groups[row.GroupIndex]
	return NewGroup(g.Name, g.Items...), row.Item, true
}

// RowAt returns the row at flat position pos.
func (l *List) RowAt(pos int) (Row, bool) {
	if pos < 0 || pos >= l.total {
		return Row{}, false
	}
	k := l.owner(pos)
	g := l.groups[k]
	row := Row{Group: g.Name, GroupIndex: k}
	if pos == l.offsets[k] {
		row.Kind = RowHeader
		return row, true
	}
	idx := pos - l.offsets[k] - 1
	if idx >= len(g.Items) {
		return Row{}, false
	}
	row.Kind = RowItem
	row.ItemIndex = idx
	row.Item = g.Items[idx]
	return row, true
}

// Rows materializes the flat sequence for a renderer.
func (l *List) Rows() []Row {
	if l.total == 0 {
		return nil
	}
	rows := make([]Row, 0, l.total)
	for k, g := range l.groups {
		rows = append(rows, Row{Kind: RowHeader, Group: g.Name, GroupIndex: k})
		for i, item := range g.Items {
			rows = append(rows, Row{
				Kind:       RowItem,
				Group:      g.Name,
				GroupIndex: k,
				ItemIndex:  i,
				Item:       item,
			})
		}
	}
	return rows
}
