package knowledge

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Search returns the advisory text for the category that best matches
// query, or false when no category has a single trigger hit.
func (b *Base) Search(query string) (string, bool) {
	m, ok := b.Match(query)
	if !ok {
		return "", false
	}
	e := b.entries[b.byCategory[m.Category]]

	var sb strings.Builder
	sb.WriteString(strings.Join(e.Tips, TipsSep))

	if top := b.rankQA(e.QA, query); len(top) > 0 {
		sb.WriteString(SectionSep)
		sb.WriteString(QAHeader)
		for i, s := range top {
			if i == 0 {
				sb.WriteString(TipsSep)
			} else {
				sb.WriteString(SectionSep)
			}
			sb.WriteString(QAPrefix + s.qa.Question + TipsSep + APrefix + s.qa.Answer)
		}
	}

	return strings.TrimSpace(sb.String()), true
}

// Match picks the category with the most trigger hits in query. Ties go to
// the category that appears first in the table.
func (b *Base) Match(query string) (Match, bool) {
	q := strings.ToLower(query)

	best := Match{}
	for _, e := range b.entries {
		hits := 0
		for _, t := range e.Triggers {
			if t != "" && strings.Contains(q, t) {
				hits++
			}
		}
		if hits > best.Hits {
			best = Match{Category: e.Category, Hits: hits}
		}
	}
	return best, best.Hits > 0
}

// CategoryTips returns the tips of one category without any Q&A.
func (b *Base) CategoryTips(c Category) (string, bool) {
	i, ok := b.byCategory[c]
	if !ok || len(b.entries[i].Tips) == 0 {
		return "", false
	}
	return strings.Join(b.entries[i].Tips, TipsSep), true
}

// Entry returns a copy of the entry for c.
func (b *Base) Entry(c Category) (Entry, bool) {
	i, ok := b.byCategory[c]
	if !ok {
		return Entry{}, false
	}
	e := b.entries[i]
	return Entry{
		Category: e.Category,
		Triggers: append([]string(nil), e.Triggers...),
		Tips:     append([]string(nil), e.Tips...),
		QA:       append([]QA(nil), e.QA...),
	}, true
}

// Categories lists the categories in table order.
func (b *Base) Categories() []Category {
	out := make([]Category, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.Category
	}
	return out
}

// rankQA scores every pair against the query and keeps the best MaxQA with
// a positive score, highest first. Equal scores keep table order.
func (b *Base) rankQA(pairs []QA, query string) []scoredQA {
	words := queryWords(query)
	if len(words) == 0 {
		return nil
	}

	scored := make([]scoredQA, 0, len(pairs))
	for _, p := range pairs {
		text := strings.ToLower(p.Question + " " + p.Answer)
		score := 0
		for _, w := range words {
			if strings.Contains(text, w) {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, scoredQA{qa: p, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > MaxQA {
		scored = scored[:MaxQA]
	}
	return scored
}

// queryWords returns the distinct lowercased words of query longer than
// MinQueryWordLen runes, in order of first appearance.
func queryWords(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	seen := make(map[string]bool, len(fields))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) <= MinQueryWordLen || seen[f] {
			continue
		}
		seen[f] = true
		words = append(words, f)
	}
	return words
}
