package results

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// JumpToGroup moves the cursor to the first item of the group whose name best
// matches query. Groups without items are never considered.
func (l *List) JumpToGroup(query string) bool {
	if l.IsEmpty() || l.cursor == noCursor {
		return false
	}
	k := l.bestGroupMatch(query)
	if k < 0 {
		return false
	}
	return l.moveTo(l.offsets[k] + 1)
}

// bestGroupMatch prefers exact names, then prefixes, then substrings, then
// the closest fuzzy match. Ties resolve to the earliest group.
func (l *List) bestGroupMatch(query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return -1
	}
	candidates := make([]int, 0, len(l.groups))
	names := make([]string, 0, len(l.groups))
	for k, g := range l.groups {
		if len(g.Items) == 0 {
			continue
		}
		candidates = append(candidates, k)
		names = append(names, g.Name)
	}
	if len(candidates) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, name := range names {
		if strings.EqualFold(name, trimmed) {
			return candidates[i]
		}
	}
	for i, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return candidates[i]
		}
	}
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			return candidates[i]
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(candidates) {
		return -1
	}
	return candidates[best.OriginalIndex]
}
