package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/N1K0232/winforms"
	"github.com/N1K0232/winforms/internal/render"
)

var (
	demoTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	demoHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	demoCanvasStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	demoInfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// newDemoCmd creates the demo command: an interactive view of a scene
// where arrow keys resize the root and the layout reflows live.
func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo <scene.toml>",
		Short: "Interactively resize a scene and watch it reflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := winforms.LoadScene(args[0])
			if err != nil {
				return err
			}

			m := demoModel{scene: scene, path: args[0]}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	return cmd
}

// demoModel is the bubbletea model for the demo command. The scene's
// root element holds the mutable state; the model itself only tracks
// presentation toggles.
type demoModel struct {
	scene       *winforms.Scene
	path        string
	showMeasure bool
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left":
			m.resizeRoot(-2, 0)
		case "right":
			m.resizeRoot(2, 0)
		case "up":
			m.resizeRoot(0, -1)
		case "down":
			m.resizeRoot(0, 1)
		case "m":
			m.showMeasure = !m.showMeasure
		}
	}
	return m, nil
}

// resizeRoot grows or shrinks the root element. The explicit bounds
// mask makes the change behave like a user resize: anchors recapture
// and the whole tree reflows.
func (m demoModel) resizeRoot(dw, dh int) {
	root := m.scene.Root
	b := root.Bounds()
	b.Width = max(b.Width+dw, 4)
	b.Height = max(b.Height+dh, 3)
	root.SetBounds(b, winforms.BoundsWidth|winforms.BoundsHeight)
}

func (m demoModel) View() string {
	root := m.scene.Root
	b := root.Bounds()

	var out strings.Builder
	out.WriteString(demoTitleStyle.Render(fmt.Sprintf("winforms demo: %s", m.path)))
	out.WriteString("\n")
	out.WriteString(demoHelpStyle.Render("←/→ width  ↑/↓ height  m measure  q quit"))
	out.WriteString("\n\n")
	out.WriteString(demoCanvasStyle.Render(render.Snapshot(root)))
	out.WriteString("\n\n")
	out.WriteString(demoInfoStyle.Render(fmt.Sprintf("root: %dx%d", b.Width, b.Height)))
	if m.showMeasure {
		pref := winforms.Measure(root, winforms.NewSize(winforms.Unbounded, winforms.Unbounded))
		out.WriteString(demoInfoStyle.Render(fmt.Sprintf("  preferred: %dx%d", pref.Width, pref.Height)))
	}
	out.WriteString("\n")
	return out.String()
}
