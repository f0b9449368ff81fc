package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/isowave/internal/config"
	"github.com/san-kum/isowave/internal/field"
	"github.com/san-kum/isowave/internal/solver"
	"github.com/san-kum/isowave/internal/stencil"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	drawCutoff   = 0.02
)

type TickMsg time.Time

// Model animates the serial stepper over the wavefield, one time step per
// frame.
type Model struct {
	cfg       *config.Config
	params    stencil.Params
	stepper   *solver.Stepper
	canvas    *Canvas
	frameRate int
	running   bool
}

// NewModel seeds a wavefield for the given config and prepares the view.
func NewModel(cfg *config.Config, frameRate int) (Model, error) {
	params := stencil.DefaultParams()
	wf, err := field.NewWavefield(cfg.Rows, cfg.Cols, params.HalfLength)
	if err != nil {
		return Model{}, err
	}
	wf.Seed(params.HalfLength)

	if frameRate < 1 {
		frameRate = 30
	}

	return Model{
		cfg:       cfg,
		params:    params,
		stepper:   solver.NewStepper(params, wf),
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		frameRate: frameRate,
		running:   true,
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.stepper.Reset()
		}
	case TickMsg:
		if m.running && m.stepper.Steps() < m.cfg.Iterations {
			m.stepper.Step()
		}
		DrawField(m.canvas, m.stepper.Current(), drawCutoff)
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("isowave live  %dx%d", m.cfg.Rows, m.cfg.Cols)))
	sb.WriteByte('\n')
	sb.WriteString(CanvasStyle.Render(m.canvas.String()))
	sb.WriteByte('\n')

	status := "running"
	if !m.running {
		status = "paused"
	}
	if m.stepper.Steps() >= m.cfg.Iterations {
		status = "done"
	}

	sb.WriteString(LabelStyle.Render("step"))
	sb.WriteString(ValueStyle.Render(fmt.Sprintf("%d / %d", m.stepper.Steps(), m.cfg.Iterations)))
	sb.WriteByte('\n')
	sb.WriteString(LabelStyle.Render("max amplitude"))
	sb.WriteString(ValueStyle.Render(fmt.Sprintf("%.6f", MaxAmplitude(m.stepper.Current()))))
	sb.WriteByte('\n')
	sb.WriteString(LabelStyle.Render("status"))
	sb.WriteString(ValueStyle.Render(status))
	sb.WriteByte('\n')

	sb.WriteString(HelpStyle.Render("space pause · r reset · q quit"))
	sb.WriteByte('\n')

	return sb.String()
}
