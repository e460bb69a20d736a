package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/gridpaint/pkg/config"
)

// ConfigReloadMsg carries a freshly loaded configuration from the file
// watcher into the update loop.
type ConfigReloadMsg struct {
	Config *config.Config
}

// WaitForReload returns a Cmd that blocks for the next config on ch and
// delivers it as a ConfigReloadMsg. A closed channel yields no message.
func WaitForReload(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadMsg{Config: cfg}
	}
}
