package knowledge

import "strings"

// Base is the read-only knowledge base. It is safe for concurrent use
// because nothing mutates it after New returns.
type Base struct {
	entries    []Entry
	byCategory map[Category]int
}

// New builds a Base from entries. Table order is significant: it decides
// which category wins when two categories match a query equally well.
func New(entries []Entry) *Base {
	b := &Base{
		entries:    make([]Entry, len(entries)),
		byCategory: make(map[Category]int, len(entries)),
	}
	for i, e := range entries {
		b.entries[i] = Entry{
			Category: e.Category,
			Triggers: lowerAll(e.Triggers),
			Tips:     append([]string(nil), e.Tips...),
			QA:       append([]QA(nil), e.QA...),
		}
		if _, dup := b.byCategory[e.Category]; !dup {
			b.byCategory[e.Category] = i
		}
	}
	return b
}

// NewDefault builds a Base from the built-in table.
func NewDefault() *Base {
	return New(DefaultEntries())
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
