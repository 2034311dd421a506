// Package tui is an interactive terminal front-end for a human versus AI game.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/game"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	humanStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5fafff"))
	aiStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f87"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	winningStyle = lipgloss.NewStyle().Underline(true)
	gridStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	statusStyle  = lipgloss.NewStyle().MarginTop(1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	helpStyle    = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

const helpText = "arrows/hjkl: move, enter/space: place, 1-9: place directly, r: restart, q: quit"

// Result of the AI search, 'gen' tells which game it belongs to
type aiMoveMsg struct {
	gen    int
	result minimax.SearchResult
	err    error
}

type Model struct {
	newGame  func() *game.Game
	game     *game.Game
	gen      int
	cursor   ttt.Move
	thinking bool
	message  string
	err      error
}

// 'newGame' is called on start and on every restart
func NewModel(newGame func() *game.Game) Model {
	m := Model{
		newGame: newGame,
		game:    newGame(),
		cursor:  ttt.Move{Row: 1, Col: 1},
	}
	m.thinking = !m.game.Over() && m.game.Turn() == ttt.AI
	return m
}

func (m Model) Game() *game.Game {
	return m.game
}

func (m Model) Cursor() ttt.Move {
	return m.cursor
}

func (m Model) Thinking() bool {
	return m.thinking
}

func (m Model) Init() tea.Cmd {
	return m.aiTurn()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case aiMoveMsg:
		if msg.gen != m.gen {
			// reply for a game which was restarted
			return m, nil
		}
		m.thinking = false
		if msg.err == nil {
			msg.err = m.game.ApplyAI(msg.result)
		}
		m.err = msg.err
		if m.err == nil {
			m.message = fmt.Sprintf("AI played %v", msg.result.BestMove)
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.game = m.newGame()
		m.gen++
		m.thinking = false
		m.message = ""
		m.err = nil
		m.cursor = ttt.Move{Row: 1, Col: 1}
		return m, m.aiTurn()
	}

	if m.thinking {
		return m, nil
	}

	switch key {
	case "up", "k":
		m.cursor.Row = max(0, m.cursor.Row-1)
	case "down", "j":
		m.cursor.Row = min(2, m.cursor.Row+1)
	case "left", "h":
		m.cursor.Col = max(0, m.cursor.Col-1)
	case "right", "l":
		m.cursor.Col = min(2, m.cursor.Col+1)
	case "enter", " ":
		return m.place(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.cursor = ttt.MoveFromIndex(int(key[0] - '1'))
		return m.place(m.cursor)
	}
	return m, nil
}

func (m Model) place(move ttt.Move) (tea.Model, tea.Cmd) {
	if err := m.game.PlayHuman(move); err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.message = fmt.Sprintf("You played %v", move)
	return m, m.aiTurn()
}

// Search the AI reply in the background, nil if it's not the AI's turn
func (m *Model) aiTurn() tea.Cmd {
	if m.game.Over() || m.game.Turn() != ttt.AI {
		return nil
	}

	m.thinking = true
	g, gen := m.game, m.gen
	return func() tea.Msg {
		result, err := g.SearchAI()
		return aiMoveMsg{gen: gen, result: result, err: err}
	}
}

func (m Model) View() string {
	sb := strings.Builder{}
	sb.WriteString(titleStyle.Render("Tic-tac-toe"))
	sb.WriteString("\n")
	sb.WriteString(m.renderBoard())
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(m.status()))
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(errorStyle.Render(errorText(m.err)))
		sb.WriteString("\n")
	} else if m.message != "" {
		sb.WriteString(m.message)
		sb.WriteString("\n")
	}

	if result := m.game.LastSearch(); result.BestMove != ttt.NoMove {
		sb.WriteString(fmt.Sprintf("search: score %d, nodes %d, cutoffs %d, %d ms\n",
			result.Score, result.Nodes, result.Cutoffs, result.TimeMs))
	}

	sb.WriteString(helpStyle.Render(helpText))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderBoard() string {
	board := m.game.Board()
	winning, won := winningLine(&board)

	rows := make([]string, 0, 5)
	for row := range 3 {
		cells := make([]string, 3)
		for col := range 3 {
			move := ttt.Move{Row: row, Col: col}
			cell := board.At(move)
			text := " " + string(cell.Rune()) + " "

			switch cell {
			case ttt.Human:
				text = humanStyle.Render(text)
			case ttt.AI:
				text = aiStyle.Render(text)
			}
			if won && (winning[0] == move || winning[1] == move || winning[2] == move) {
				text = winningStyle.Render(text)
			}
			if move == m.cursor && !m.game.Over() {
				text = cursorStyle.Render(text)
			}
			cells[col] = text
		}
		rows = append(rows, strings.Join(cells, gridStyle.Render("│")))
		if row < 2 {
			rows = append(rows, gridStyle.Render("───┼───┼───"))
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) status() string {
	switch m.game.Status() {
	case ttt.TerminationAIWon:
		return "AI wins! Press r to play again."
	case ttt.TerminationHumanWon:
		return "Human wins! Press r to play again."
	case ttt.TerminationDraw:
		return "It's a draw! Press r to play again."
	}

	if m.thinking {
		return "AI is thinking..."
	}
	if m.game.Turn() == ttt.Human {
		return "Your turn (" + humanStyle.Render("X") + ")"
	}
	return "AI's turn (" + aiStyle.Render("O") + ")"
}

func winningLine(b *ttt.Board) ([3]ttt.Move, bool) {
	switch b.Termination() {
	case ttt.TerminationAIWon:
		return ttt.WinningLine(b, ttt.AI)
	case ttt.TerminationHumanWon:
		return ttt.WinningLine(b, ttt.Human)
	}
	return [3]ttt.Move{}, false
}

func errorText(err error) string {
	switch {
	case errors.Is(err, game.ErrOccupied):
		return "Invalid move. Try again."
	case errors.Is(err, game.ErrGameOver):
		return "The game is over, press r to restart."
	}
	return err.Error()
}
