package http

import (
	"emergency-triage/internal/knowledge"
)

// --- Request DTOs ---

type searchReq struct {
	Query string `json:"query" binding:"required,max=2000"`
}

func (r searchReq) validate() error { return nil }

func (r searchReq) toInput() knowledge.SearchInput {
	return knowledge.SearchInput{Query: r.Query}
}

// --- Response DTOs ---

type searchResp struct {
	Found    bool   `json:"found"`
	Category string `json:"category,omitempty"`
	Text     string `json:"text"`
}

func (h *handler) newSearchResp(out knowledge.SearchOutput) searchResp {
	return searchResp{
		Found:    out.Found,
		Category: string(out.Category),
		Text:     out.Text,
	}
}

type qaResp struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type categoryResp struct {
	Category string   `json:"category"`
	Tips     []string `json:"tips"`
	QA       []qaResp `json:"qa"`
}

type listCategoriesResp struct {
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newListCategoriesResp(out knowledge.ListCategoriesOutput) listCategoriesResp {
	cats := make([]categoryResp, len(out.Entries))
	for i, e := range out.Entries {
		qa := make([]qaResp, len(e.QA))
		for j, p := range e.QA {
			qa[j] = qaResp{Question: p.Question, Answer: p.Answer}
		}
		cats[i] = categoryResp{
			Category: string(e.Category),
			Tips:     e.Tips,
			QA:       qa,
		}
	}
	return listCategoriesResp{Categories: cats}
}
