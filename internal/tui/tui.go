package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/wagon-trail/internal/engine"
	"github.com/tatianab/wagon-trail/internal/input"
	"github.com/tatianab/wagon-trail/internal/models"
	"github.com/tatianab/wagon-trail/internal/scores"
)

const tickInterval = 700 * time.Millisecond

type model struct {
	sim       *engine.Simulation
	store     *scores.Store // may be nil when score keeping is disabled
	saveName  string
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
	recorded  bool
	ticking   bool // one tick chain at a time
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func NewModel(sim *engine.Simulation, store *scores.Store, saveName string) model {
	ti := textinput.New()
	ti.Placeholder = "Press ENTER to continue..."
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 40

	m := model{
		sim:       sim,
		store:     store,
		saveName:  saveName,
		textInput: ti,
	}
	if form := sim.ActiveForm(); form != nil {
		m.gameLog = gameStyle.Render(form.Render()) + "\n\n"
	}
	return m
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	if m.traveling() {
		return tea.Batch(textinput.Blink, tick())
	}
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.handleLine(m.textInput.Value())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logWidth := int(float64(msg.Width) * 0.72)
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(logWidth, msg.Height-6)
		} else {
			m.viewport.Width = logWidth
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()

	case tickMsg:
		return m.handleTick()
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) handleTick() (tea.Model, tea.Cmd) {
	m.ticking = false
	if !m.traveling() {
		return m, nil
	}

	m.sim.OnTick(false)

	if m.sim.Finished() {
		m.appendLog(gameStyle.Bold(true).Render(m.finalSummary()))
		m.recordScore()
		return m, nil
	}

	m.appendLog(m.travelLine())

	if form := m.sim.ActiveForm(); form != nil {
		// Arrived somewhere; show the location's dialog and stop the clock.
		m.appendLog(gameStyle.Render(form.Render()))
		return m, nil
	}
	m.ticking = true
	return m, tick()
}

func (m model) handleLine(line string) (tea.Model, tea.Cmd) {
	m.textInput.Reset()

	if cmd, ok := input.Parse(line); ok {
		switch cmd {
		case input.Quit:
			return m, tea.Quit
		case input.Save:
			if err := m.sim.Session().Save(m.saveName); err != nil {
				m.appendLog(helpStyle.Render("Could not save: " + err.Error()))
			} else {
				m.appendLog(helpStyle.Render("Game saved."))
			}
			return m, nil
		case input.Supplies:
			m.sim.OpenSupplies()
			m.appendLog(gameStyle.Render(m.sim.ActiveForm().Render()))
			return m, nil
		case input.Map:
			m.sim.OpenMap()
			m.appendLog(gameStyle.Render(m.sim.ActiveForm().Render()))
			return m, nil
		}
		// input.Continue falls through as a plain acknowledgment.
	}

	if m.sim.ActiveForm() == nil {
		return m, nil
	}

	m.appendLog(userStyle.Render("> " + line))
	m.sim.HandleInput(line)

	if form := m.sim.ActiveForm(); form != nil {
		m.appendLog(gameStyle.Render(form.Render()))
		return m, nil
	}
	if m.traveling() && !m.ticking {
		m.ticking = true
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 {
		return "\n  Loading the trail...\n"
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderStatus(),
	)

	help := helpStyle.Render("Commands: supplies, map, save, quit. Or just answer the prompt.")

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	) + "\n"
}

func (m model) renderStatus() string {
	sess := m.sim.Session()

	date := titleStyle.Render("DATE") + "\n" +
		m.sim.Date().Format("January 2, 2006") + "\n\n"

	locName := "on the trail"
	if loc := m.sim.Trail.CurrentLocation(); loc != nil && sess.Vehicle.Parked {
		locName = loc.Name
	}
	location := titleStyle.Render("LOCATION") + "\n" + locName + "\n\n"

	nextName := "journey's end"
	if next, ok := m.sim.Trail.NextLocation(); ok {
		nextName = next.Name
	}
	ahead := titleStyle.Render("AHEAD") + "\n" +
		fmt.Sprintf("%s\n%d miles\n\n", nextName, m.sim.Trail.DistanceToNext)

	supplies := titleStyle.Render("SUPPLIES") + "\n"
	for _, item := range sess.Vehicle.Inventory {
		supplies += engine.FormatSupplyLine(item) + "\n"
	}

	stateWidth := int(float64(m.width) * 0.25)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).
		Render(date + location + ahead + supplies)
}

func (m model) travelLine() string {
	nextName := "journey's end"
	if next, ok := m.sim.Trail.NextLocation(); ok {
		nextName = next.Name
	}
	return helpStyle.Render(fmt.Sprintf("Day %d: %d miles to %s.",
		m.sim.Day(), m.sim.Trail.DistanceToNext, nextName))
}

func (m model) finalSummary() string {
	sess := m.sim.Session()
	visited := 0
	for _, loc := range sess.Trail.Locations {
		if loc.Status != models.StatusUnvisited {
			visited++
		}
	}
	destination := "the end of the trail"
	if n := len(sess.Trail.Locations); n > 0 {
		destination = sess.Trail.Locations[n-1].Name
	}
	return fmt.Sprintf(
		"You made it to %s!\n\n%d days on the trail, %d landmarks visited.\n\nPress Esc to leave the game.",
		destination, m.sim.Day(), visited)
}

// appendLog adds a block to the travel log and scrolls to it.
func (m *model) appendLog(block string) {
	m.gameLog += block + "\n\n"
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m *model) recordScore() {
	if m.store == nil || m.recorded {
		return
	}
	sess := m.sim.Session()
	visited := 0
	for _, loc := range sess.Trail.Locations {
		if loc.Status != models.StatusUnvisited {
			visited++
		}
	}
	cash := 0.0
	if item := sess.Vehicle.Item(models.ItemCash); item != nil {
		cash = item.Quantity
	}
	_ = m.store.Record(scores.Score{
		RunID:            sess.ID,
		Leader:           sess.Leader,
		Outcome:          "won",
		Days:             m.sim.Day(),
		LocationsVisited: visited,
		Cash:             cash,
	})
	m.recorded = true
}

// traveling reports whether the wagon is rolling with no dialog open.
func (m model) traveling() bool {
	return !m.sim.Finished() && m.sim.ActiveForm() == nil && !m.sim.Vehicle().Parked
}

// Run starts the TUI for the given simulation.
func Run(sim *engine.Simulation, store *scores.Store, saveName string) error {
	p := tea.NewProgram(NewModel(sim, store, saveName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
