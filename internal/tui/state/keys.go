package state

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the list screen bindings. Form and search input read keys
// by type instead, so runes reach the text fields.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	View     key.Binding
	Edit     key.Binding
	Add      key.Binding
	Delete   key.Binding
	Favorite key.Binding
	Search   key.Binding
	Refresh  key.Binding
	Source   key.Binding
	Layout   key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "move")),
		Down:     key.NewBinding(key.WithKeys("j", "down")),
		View:     key.NewBinding(key.WithKeys("v", "enter"), key.WithHelp("v", "view")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Source:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "api/mock")),
		Layout:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cards/compact")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.View, k.Edit, k.Add, k.Delete, k.Favorite, k.Search, k.Refresh, k.Source, k.Layout, k.Quit}
}
