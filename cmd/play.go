package cmd

import (
	"context"
	"fmt"
	"io"

	boardadapter "github.com/bnema/icebreaker-bingo/internal/adapters/render/board"
	"github.com/bnema/icebreaker-bingo/internal/application"
	"github.com/bnema/icebreaker-bingo/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type playKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Bingo     key.Binding
	Scavenger key.Binding
	Reset     key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
}

func newPlayKeyMap() playKeyMap {
	return playKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space", "enter", "x"), key.WithHelp("space", "mark")),
		Bingo:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bingo")),
		Scavenger: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scavenger hunt")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new game")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// playKeys adapts the key map to help.KeyMap for the current screen.
type playKeys struct {
	keys   playKeyMap
	screen domain.Screen
	modal  bool
}

func (k playKeys) ShortHelp() []key.Binding {
	switch {
	case k.modal:
		return []key.Binding{k.keys.Dismiss, k.keys.Reset, k.keys.Quit}
	case k.screen == domain.ScreenStart:
		return []key.Binding{k.keys.Bingo, k.keys.Scavenger, k.keys.Quit}
	default:
		return []key.Binding{k.keys.Up, k.keys.Down, k.keys.Left, k.keys.Right, k.keys.Toggle, k.keys.Reset, k.keys.Quit}
	}
}

func (k playKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type playModel struct {
	ctx     context.Context
	session *application.Session
	keys    playKeyMap
	help    help.Model
	modal   lipgloss.Style
	cursor  int
}

func newPlayModel(ctx context.Context, session *application.Session) playModel {
	return playModel{
		ctx:     ctx,
		session: session,
		keys:    newPlayKeyMap(),
		help:    help.New(),
		modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("201")).
			Padding(1, 4).
			MarginTop(1).
			Bold(true),
	}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Quit) {
		return m, tea.Quit
	}

	view := m.session.Current()

	if view.ShowWinModal {
		switch {
		case key.Matches(keyMsg, m.keys.Dismiss):
			m.session.DismissWinModal()
		case key.Matches(keyMsg, m.keys.Reset):
			m.session.ResetGame(m.ctx)
			m.cursor = 0
		}
		return m, nil
	}

	if view.Screen == domain.ScreenStart {
		mode := domain.Mode("")
		switch {
		case key.Matches(keyMsg, m.keys.Bingo):
			mode = domain.ModeBingo
		case key.Matches(keyMsg, m.keys.Scavenger):
			mode = domain.ModeScavenger
		}
		if mode != "" {
			_ = m.session.StartGame(m.ctx, mode)
			m.cursor = 0
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Toggle):
		m.session.ToggleSquare(m.ctx, m.cursor)
	case key.Matches(keyMsg, m.keys.Reset):
		m.session.ResetGame(m.ctx)
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, view, -1, 0)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, view, 1, 0)
	case key.Matches(keyMsg, m.keys.Left):
		m.cursor = moveCursor(m.cursor, view, 0, -1)
	case key.Matches(keyMsg, m.keys.Right):
		m.cursor = moveCursor(m.cursor, view, 0, 1)
	}

	return m, nil
}

// moveCursor moves on the 5x5 grid in bingo mode and up and down the list
// in scavenger mode. The cursor stops at the edges.
func moveCursor(cursor int, view application.View, dRow, dCol int) int {
	if len(view.Board) == 0 {
		return 0
	}

	if view.Mode == domain.ModeScavenger {
		return clamp(cursor+dRow, 0, len(view.Board)-1)
	}

	row := clamp(cursor/domain.GridSize+dRow, 0, domain.GridSize-1)
	col := clamp(cursor%domain.GridSize+dCol, 0, domain.GridSize-1)
	return row*domain.GridSize + col
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m playModel) View() string {
	view := m.session.Current()

	opts := boardadapter.DefaultOptions()
	if view.Screen != domain.ScreenStart {
		opts.Cursor = m.cursor
	}

	body := boardadapter.RenderView(view, opts)
	if view.Screen == domain.ScreenStart {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "Press b for bingo or s for a scavenger hunt.")
	}
	if view.ShowWinModal {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.modal.Render("BINGO!\nYou completed a line."))
	}

	keys := playKeys{keys: m.keys, screen: view.Screen, modal: view.ShowWinModal}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(keys)) + "\n"
}

func newPlayCmd(app *app) *cobra.Command {
	var inline bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			return runPlay(cmd.Context(), session, cmd.InOrStdin(), cmd.OutOrStdout(), !inline)
		},
	}

	cmd.Flags().BoolVar(&inline, "inline", false, "Draw below the prompt instead of using the full screen")

	return cmd
}

func runPlay(ctx context.Context, session *application.Session, in io.Reader, out io.Writer, altScreen bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	opts := []tea.ProgramOption{
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	finalModel, err := tea.NewProgram(newPlayModel(ctx, session), opts...).Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(playModel); !ok {
		return fmt.Errorf("unexpected final play model type %T", finalModel)
	}

	return nil
}
