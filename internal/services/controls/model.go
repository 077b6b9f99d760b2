package controls

import (
	"fmt"
	"strings"

	"orusconsole/internal/services/query"
)

type DialogState struct {
	Open    bool         `json:"open"`
	Pending bool         `json:"pending"`
	Status  query.Status `json:"status"`
	Error   string       `json:"error,omitempty"`
}

type DeleteConfirmation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ItemName    string `json:"itemName"`
}

type Model struct {
	Dialogs            map[Dialog]DialogState `json:"dialogs"`
	SubjectName        string                 `json:"subjectName"`
	DeleteConfirmation *DeleteConfirmation    `json:"deleteConfirmation,omitempty"`
}

// Model renders the panel, applying Observe first.
func (p *Panel) Model() Model {
	p.Observe()

	p.mu.Lock()
	defer p.mu.Unlock()

	m := Model{
		Dialogs:     make(map[Dialog]DialogState, len(dialogs)),
		SubjectName: p.subjectName(),
	}
	for _, d := range dialogs {
		status, err := p.mutations[d].State()
		state := DialogState{
			Open:    p.open[d],
			Pending: status == query.StatusPending,
			Status:  status,
		}
		if err != nil {
			state.Error = err.Error()
		}
		m.Dialogs[d] = state
	}

	if p.open[DialogDelete] {
		kind := string(p.target.Kind)
		m.DeleteConfirmation = &DeleteConfirmation{
			Title:       "Delete " + title(kind),
			Description: fmt.Sprintf("This will permanently delete the %s and all associated data.", kind),
			ItemName:    p.subjectName(),
		}
	}
	return m
}

// subjectName is the business name when there is one.
func (p *Panel) subjectName() string {
	if p.target.BusinessName != "" {
		return p.target.BusinessName
	}
	return p.target.Name
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
