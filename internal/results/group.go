package results

// Item is one selectable match within a group.
type Item struct {
	Line int
	Text string
}

// Group is a named container of items, typically one file's matches.
type Group struct {
	Name  string
	Items []Item
}

// NewGroup builds a group that owns a private copy of the supplied items.
func NewGroup(name string, items ...Item) Group {
	return Group{Name: name, Items: cloneItems(items)}
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// RowKind distinguishes header rows from item rows in the flat sequence.
type RowKind int

const (
	RowHeader RowKind = iota
	RowItem
)

// Row is a single element of the flattened header+items sequence.
type Row struct {
	Kind       RowKind
	Group      string
	GroupIndex int
	// ItemIndex and Item are only meaningful for RowItem.
	ItemIndex int
	Item      Item
}
