package detail

import (
	"sync"

	"orusconsole/internal/errors"
)

type Tab string

const (
	TabOverview     Tab = "overview"
	TabTransactions Tab = "transactions"
	TabRewards      Tab = "rewards"
	TabKYC          Tab = "kyc"
)

// Tabs is a fixed, ordered tab set with exactly one active tab.
type Tabs struct {
	mu     sync.Mutex
	tabs   []Tab
	active Tab
}

// NewTabs activates the first tab.
func NewTabs(tabs ...Tab) *Tabs {
	return &Tabs{tabs: tabs, active: tabs[0]}
}

func (t *Tabs) Switch(name string) (Tab, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, tab := range t.tabs {
		if string(tab) == name {
			t.active = tab
			return tab, nil
		}
	}
	return "", errors.ErrInvalidTab.WithMessage("unknown tab %q", name)
}

func (t *Tabs) Active() Tab {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

func (t *Tabs) List() []Tab {
	return append([]Tab(nil), t.tabs...)
}
