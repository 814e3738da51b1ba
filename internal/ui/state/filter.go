package state

import (
	"strings"

	"github.com/atomicstack/cmenu/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and moves the cursor to the best match.
func (p *Panel) SetFilter(query string) {
	p.Filter = query
	p.applyFilter()
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return
	}
	if idx := BestMatchIndex(p.Items, trimmed); idx >= 0 {
		p.Cursor = idx
	}
}

// AppendFilter adds text to the end of the filter.
func (p *Panel) AppendFilter(text string) bool {
	if text == "" {
		return false
	}
	p.SetFilter(p.Filter + text)
	return true
}

// DeleteFilterRuneBackward removes the last rune of the filter.
func (p *Panel) DeleteFilterRuneBackward() bool {
	runes := []rune(p.Filter)
	if len(runes) == 0 {
		return false
	}
	p.SetFilter(string(runes[:len(runes)-1]))
	return true
}

func (p *Panel) applyFilter() {
	p.Items = FilterItems(p.Full, p.Filter)
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if p.ViewportOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
	}
}

// FilterItems returns items matching the supplied filter string.
func FilterItems(items []menu.Item, query string) []menu.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]menu.Item, 0, len(matches))
		for idx, item := range items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]menu.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.ID), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex returns the best index for the query among the provided items.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
