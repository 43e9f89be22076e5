package canopy

// MenuEventFunc handles a key delivered to a menu.
type MenuEventFunc func(m *Menu, key Key) bool

// Menu is a named sequence of top-level windows rendered above the plain
// top-level windows while active. At most one menu is active at a time.
type Menu struct {
	name    string
	windows []Window
	event   MenuEventFunc
	tui     *TUI
}

// MenuConfig declares a menu.
type MenuConfig struct {
	Name  string
	Event MenuEventFunc
}

// NewMenu creates a menu owned by the root context. It starts inactive.
func (t *TUI) NewMenu(cfg MenuConfig) *Menu {
	m := &Menu{
		name:  cfg.Name,
		event: cfg.Event,
		tui:   t,
	}
	t.menus = append(t.menus, m)
	return m
}

// Name returns the menu's name.
func (m *Menu) Name() string { return m.name }

// Windows returns the menu's top-level window sequence.
func (m *Menu) Windows() []Window { return m.windows }

// NewParent creates a top-level parent window owned by the menu.
func (m *Menu) NewParent(cfg ParentConfig) *Parent {
	p := newParent(m.tui, cfg)
	p.menu = m
	m.windows = append(m.windows, p)
	return p
}

// NewText creates a top-level text window owned by the menu.
func (m *Menu) NewText(cfg TextConfig) *Text {
	w := newText(m.tui, cfg)
	w.menu = m
	m.windows = append(m.windows, w)
	return w
}

// Destroy tears down the menu's windows and detaches it from the root
// context, deactivating it if active.
func (m *Menu) Destroy() {
	for len(m.windows) > 0 {
		m.windows[0].Destroy()
	}
	if m.tui != nil {
		if m.tui.menu == m {
			m.tui.menu = nil
		}
		for i, o := range m.tui.menus {
			if o == m {
				m.tui.menus = append(m.tui.menus[:i], m.tui.menus[i+1:]...)
				break
			}
		}
		m.tui = nil
	}
}
