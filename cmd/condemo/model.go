package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fernwood/teakit/condns"
	"github.com/fernwood/teakit/internal/config"
	"github.com/fernwood/teakit/recollect"
	"github.com/fernwood/teakit/widgets"
)

const (
	sizeKey  = "condemo window size"
	alphaKey = "condemo alpha mode"
	betaKey  = "condemo beta mode"
)

var (
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Background(lipgloss.Color("#313244")).Padding(0, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Background(lipgloss.Color("#1e1e2e")).Padding(0, 2)
	condnsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

type keyMap struct {
	Alpha key.Binding
	Beta  key.Binding
	Apply key.Binding
	Sync  key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Alpha: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle alpha")),
		Beta:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "toggle beta")),
		Apply: key.NewBinding(key.WithKeys("enter", "x"), key.WithHelp("enter", "apply")),
		Sync:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Alpha, k.Beta, k.Apply, k.Sync, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Alpha, k.Beta, k.Apply, k.Sync, k.Quit}}
}

type model struct {
	cfg   config.Config
	store *recollect.Store
	keys  keyMap

	flags    *condns.FlagSet
	alpha    condns.Pair
	beta     condns.Pair
	enforcer *condns.Enforcer

	alphaToggle *widgets.Toggle
	betaToggle  *widgets.Toggle
	applyBtn    *widgets.Button
	syncBtn     *widgets.Button
	hint        *widgets.Note

	status string
	width  int
	height int
}

func newModel(cfg config.Config, store *recollect.Store) (*model, error) {
	flags := condns.NewFlagSet()
	alpha, err := flags.RegisterPair("alpha mode")
	if err != nil {
		return nil, fmt.Errorf("register alpha: %w", err)
	}
	beta, err := flags.RegisterPair("beta mode")
	if err != nil {
		return nil, fmt.Errorf("register beta: %w", err)
	}

	m := &model{
		cfg:         cfg,
		store:       store,
		keys:        newKeyMap(),
		flags:       flags,
		alpha:       alpha,
		beta:        beta,
		enforcer:    condns.WithInitialCondns(alpha.Inactive | beta.Inactive),
		alphaToggle: widgets.NewToggle("Alpha mode", "a"),
		betaToggle:  widgets.NewToggle("Beta mode", "b"),
		applyBtn:    widgets.NewButton("Apply", "enter"),
		syncBtn:     widgets.NewButton("Sync", "s"),
		hint:        widgets.NewNote("turn on alpha mode to enable actions"),
		status:      "Ready.",
	}

	m.enforcer.AddWidget(m.applyBtn, condns.Sensitivity(alpha.Active))
	m.enforcer.AddWidget(m.syncBtn, condns.Sensitivity(alpha.Active|beta.Active))
	m.enforcer.AddWidget(m.hint, condns.Visibility(alpha.Inactive))

	m.recallState()
	return m, nil
}

// recallState restores remembered toggle positions and window size.
func (m *model) recallState() {
	if m.store == nil {
		return
	}
	if sz, ok, err := m.store.LoadSize(sizeKey); err == nil && ok {
		m.width, m.height = sz.Width, sz.Height
	}
	if v, ok, err := m.store.Load(alphaKey); err == nil && ok && v == "on" {
		m.alphaToggle.On = true
		m.enforcer.ApplyChangedCondns(m.alpha.ChangeTo(true))
	}
	if v, ok, err := m.store.Load(betaKey); err == nil && ok && v == "on" {
		m.betaToggle.On = true
		m.enforcer.ApplyChangedCondns(m.beta.ChangeTo(true))
	}
}

func (m *model) rememberToggle(key string, on bool) {
	if m.store == nil {
		return
	}
	v := "off"
	if on {
		v = "on"
	}
	if err := m.store.Save(key, v); err != nil {
		m.status = fmt.Sprintf("Save failed: %v", err)
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.store != nil && msg.Width > 0 && msg.Height > 0 {
			if err := m.store.SaveSize(sizeKey, recollect.Size{Width: msg.Width, Height: msg.Height}); err != nil {
				m.status = fmt.Sprintf("Save failed: %v", err)
			}
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Alpha):
		if m.alphaToggle.Flip() {
			m.enforcer.ApplyChangedCondns(m.alpha.ChangeTo(m.alphaToggle.On))
			m.rememberToggle(alphaKey, m.alphaToggle.On)
			m.status = "Alpha mode " + onOff(m.alphaToggle.On)
		}
		return m, nil
	case key.Matches(msg, m.keys.Beta):
		if m.betaToggle.Flip() {
			m.enforcer.ApplyChangedCondns(m.beta.ChangeTo(m.betaToggle.On))
			m.rememberToggle(betaKey, m.betaToggle.On)
			m.status = "Beta mode " + onOff(m.betaToggle.On)
		}
		return m, nil
	case key.Matches(msg, m.keys.Apply):
		if m.applyBtn.Sensitive() {
			m.status = "Applied."
		} else {
			m.status = "Apply is disabled."
		}
		return m, nil
	case key.Matches(msg, m.keys.Sync):
		if m.syncBtn.Sensitive() {
			m.status = "Synced."
		} else {
			m.status = "Sync is disabled."
		}
		return m, nil
	}
	return m, nil
}

func (m *model) View() string {
	width := m.width
	if width == 0 {
		width = 60
	}

	body := widgets.Box{
		Title: "Condition demo",
		Child: widgets.VStack{
			Widgets: []widgets.Widget{
				m.alphaToggle,
				m.betaToggle,
				widgets.HStack{Widgets: []widgets.Widget{m.applyBtn, m.syncBtn}, Gap: 2},
				m.hint,
			},
			Spacing: 1,
		},
	}.Render(min(width, 48), 10)

	condnsLine := condnsStyle.Render(fmt.Sprintf("condns %06b", m.enforcer.Condns()))
	status := statusBarStyle.Render(padLine(m.status, width-4))
	footer := footerStyle.Render(padLine(renderHelp(m.keys.ShortHelp()), width-4))

	return body + "\n" + condnsLine + "\n" + status + "\n" + footer
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func padLine(s string, width int) string {
	if width <= len(s) {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func onOff(on bool) string {
	if on {
		return "on."
	}
	return "off."
}
