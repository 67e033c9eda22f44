package results

import (
	"reflect"
	"testing"
)

func match(line int, text string) Item {
	return Item{Line: line, Text: text}
}

// twoEntryList mirrors a search that matched once in entry1 and twice in entry2.
func twoEntryList() *List {
	l := NewList()
	l.AppendGroup(NewGroup("entry1", match(0, "e1m1")))
	l.AppendGroup(NewGroup("entry2", match(0, "e1m2"), match(0, "e2m2")))
	return l
}

func cursorOf(t *testing.T, l *List) int {
	t.Helper()
	pos, ok := l.Cursor()
	if !ok {
		t.Fatalf("expected cursor to be set")
	}
	return pos
}

func TestNewListIsEmpty(t *testing.T) {
	l := NewList()
	if !l.IsEmpty() {
		t.Fatalf("expected new list to be empty")
	}
	if l.Len() != 0 {
		t.Fatalf("expected zero length, got %d", l.Len())
	}
	if _, ok := l.Cursor(); ok {
		t.Fatalf("expected no cursor on empty list")
	}
	if rows := l.Rows(); rows != nil {
		t.Fatalf("expected no rows, got %#v", rows)
	}
}

func TestAppendGroup(t *testing.T) {
	l := NewList()
	l.AppendGroup(NewGroup("entry1", match(0, "e1m1")))
	if len(l.Groups()) != 1 || len(l.Offsets()) != 1 {
		t.Fatalf("expected one group and one offset, got %d/%d", len(l.Groups()), len(l.Offsets()))
	}
	if pos := cursorOf(t, l); pos != 1 {
		t.Fatalf("expected cursor 1 after first append, got %d", pos)
	}

	l.AppendGroup(NewGroup("entry2", match(0, "e1m2"), match(0, "e2m2")))
	if len(l.Groups()) != 2 || len(l.Offsets()) != 2 {
		t.Fatalf("expected two groups and two offsets, got %d/%d", len(l.Groups()), len(l.Offsets()))
	}
	if pos := cursorOf(t, l); pos != 1 {
		t.Fatalf("expected cursor to stay at 1, got %d", pos)
	}
	if got := l.Offsets(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("expected offsets [0 2], got %v", got)
	}
	if l.Len() != 5 {
		t.Fatalf("expected flat length 5, got %d", l.Len())
	}
}

func TestOffsetsStrictlyIncrease(t *testing.T) {
	sizes := []int{3, 0, 1, 0, 0, 4, 2}
	l := NewList()
	for i, n := range sizes {
		items := make([]Item, n)
		for j := range items {
			items[j] = match(j+1, "x")
		}
		l.AppendGroup(NewGroup(string(rune('a'+i)), items...))
	}
	offsets := l.Offsets()
	if offsets[0] != 0 {
		t.Fatalf("expected first offset 0, got %d", offsets[0])
	}
	for k := 1; k < len(offsets); k++ {
		want := offsets[k-1] + sizes[k-1] + 1
		if offsets[k] != want {
			t.Fatalf("offset %d: expected %d, got %d", k, want, offsets[k])
		}
		if offsets[k] <= offsets[k-1] {
			t.Fatalf("offsets not strictly increasing: %v", offsets)
		}
	}
	if l.Len() != 10+len(sizes) {
		t.Fatalf("expected flat length %d, got %d", 10+len(sizes), l.Len())
	}
}

func TestAppendGroupCopiesItems(t *testing.T) {
	items := []Item{match(1, "one")}
	l := NewList()
	l.AppendGroup(Group{Name: "a", Items: items})
	items[0].Text = "changed"
	if got := l.Groups()[0].Items[0].Text; got != "one" {
		t.Fatalf("expected stored item to be unaffected, got %q", got)
	}
}

func TestReset(t *testing.T) {
	l := twoEntryList()
	l.Next()
	l.Reset()
	if !l.IsEmpty() || l.Len() != 0 || len(l.Offsets()) != 0 {
		t.Fatalf("expected reset list to be empty")
	}
	if _, ok := l.Cursor(); ok {
		t.Fatalf("expected cursor cleared by reset")
	}
	l.AppendGroup(NewGroup("again", match(7, "x")))
	if pos := cursorOf(t, l); pos != 1 {
		t.Fatalf("expected cursor 1 after append on reset list, got %d", pos)
	}
}

func TestRows(t *testing.T) {
	l := twoEntryList()
	rows := l.Rows()
	if len(rows) != l.Len() {
		t.Fatalf("expected %d rows, got %d", l.Len(), len(rows))
	}
	kinds := []RowKind{RowHeader, RowItem, RowHeader, RowItem, RowItem}
	for i, row := range rows {
		if row.Kind != kinds[i] {
			t.Fatalf("row %d: expected kind %d, got %d", i, kinds[i], row.Kind)
		}
		at, ok := l.RowAt(i)
		if !ok || at != row {
			t.Fatalf("row %d: RowAt disagrees with Rows: %#v vs %#v", i, at, row)
		}
	}
	if rows[4].Group != "entry2" || rows[4].ItemIndex != 1 || rows[4].Item.Text != "e2m2" {
		t.Fatalf("unexpected last row %#v", rows[4])
	}
	if _, ok := l.RowAt(5); ok {
		t.Fatalf("expected no row past the end")
	}
	if _, ok := l.RowAt(-1); ok {
		t.Fatalf("expected no row before the start")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	l := NewList()
	l.AppendGroup(NewGroup("a", match(1, "one"), match(2, "two")))

	groups := l.Groups()
	groups[0].Items[0].Text = "changed"
	groups[0].Name = "renamed"

	g, item, ok := l.SelectedItem()
	if !ok {
		t.Fatalf("expected a selection")
	}
	if g.Name != "a" || item.Text != "one" || g.Items[0].Text != "one" {
		t.Fatalf("expected stored group untouched by Groups(), got %#v", g)
	}

	g.Items[1].Text = "mutated"
	l.Next()
	if _, item, _ := l.SelectedItem(); item.Text != "two" {
		t.Fatalf("expected stored group untouched by SelectedItem(), got %q", item.Text)
	}
}
