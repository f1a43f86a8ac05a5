package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/ui/display"
)

type screen int

const (
	screenHome screen = iota
	screenSection
	screenDetail
)

const (
	sectionMembers    = "Socios"
	sectionEmployees  = "Empleados"
	sectionActivities = "Actividades"
	sectionFacilities = "Instalaciones"
	sectionWeather    = "Clima"
	sectionQuit       = "Salir"
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

// entityItem is one row of a section list; index points into the club collection.
type entityItem struct {
	title string
	desc  string
	index int
}

func (e entityItem) Title() string       { return e.title }
func (e entityItem) Description() string { return e.desc }
func (e entityItem) FilterValue() string { return e.title }

type model struct {
	theme display.Theme
	deps  Deps

	scr     screen
	menu    list.Model
	items   list.Model
	section string
	detail  string

	club   *domain.Club
	report domain.LoadReport
	loaded bool

	toast  string
	width  int
	height int
}

// Run opens the read-only browser over the persisted club data.
func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := display.DefaultTheme()

	items := []list.Item{
		menuItem{sectionMembers, "Listado de socios"},
		menuItem{sectionEmployees, "Listado de empleados"},
		menuItem{sectionActivities, "Actividades e inscriptos"},
		menuItem{sectionFacilities, "Instalaciones y actividad asignada"},
		menuItem{sectionWeather, "Clima actual en el club"},
		menuItem{sectionQuit, "Cerrar el navegador"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Club Deportivo"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sub := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	sub.SetShowStatusBar(true)
	sub.SetFilteringEnabled(true)
	sub.SetShowHelp(false)

	return model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		items: sub,
		club:  domain.NewClub(),
	}
}

func (m model) Init() tea.Cmd { return cmdLoadClub(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.items.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case clubLoadedMsg:
		m.club = msg.club
		m.report = msg.report
		m.loaded = true
		if failed := msg.report.Failed(); len(failed) > 0 {
			names := make([]string, len(failed))
			for i, d := range failed {
				names[i] = d.Name
			}
			m.toast = "No se pudo cargar: " + strings.Join(names, ", ")
		}
		return m, nil

	case weatherMsg:
		if msg.err != nil {
			m.toast = "Clima: " + display.UserMessage(msg.err)
		} else {
			m.toast = "Clima actual: " + msg.weather.String()
		}
		return m, nil

	case tea.KeyMsg:
		if m.filtering() {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m = m.back()
			return m, nil

		case "enter":
			switch m.scr {
			case screenHome:
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				return m.open(it.title)
			case screenSection:
				if m.section != sectionActivities {
					return m, nil
				}
				it, ok := m.items.SelectedItem().(entityItem)
				if !ok {
					return m, nil
				}
				m.detail = renderActivity(m.club.Activities()[it.index])
				m.scr = screenDetail
				return m, nil
			}

		case "esc", "b":
			if m.scr != screenHome {
				m = m.back()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case screenSection:
		m.items, cmd = m.items.Update(msg)
	}
	return m, cmd
}

// filtering reports whether the visible list is taking typed input.
func (m model) filtering() bool {
	switch m.scr {
	case screenHome:
		return m.menu.FilterState() == list.Filtering
	case screenSection:
		return m.items.FilterState() == list.Filtering
	}
	return false
}

// open switches to the named section, or runs its action.
func (m model) open(section string) (model, tea.Cmd) {
	switch section {
	case sectionQuit:
		return m, tea.Quit
	case sectionWeather:
		m.toast = "Consultando clima…"
		return m, cmdFetchWeather(m.deps)
	}

	m.section = section
	m.items.Title = section
	m.items.ResetFilter()
	m.items.ResetSelected()
	cmd := m.items.SetItems(sectionItems(m.club, section))
	m.scr = screenSection
	return m, cmd
}

func (m model) back() model {
	switch m.scr {
	case screenDetail:
		m.scr = screenSection
	default:
		m.scr = screenHome
		m.section = ""
	}
	m.detail = ""
	return m
}

func sectionItems(c *domain.Club, section string) []list.Item {
	var out []list.Item
	switch section {
	case sectionMembers:
		for i, mem := range c.Members() {
			out = append(out, entityItem{
				title: mem.Name + " " + mem.Surname,
				desc:  mem.String(),
				index: i,
			})
		}
	case sectionEmployees:
		for i, e := range c.Employees() {
			out = append(out, entityItem{
				title: e.Name + " " + e.Surname,
				desc:  e.String(),
				index: i,
			})
		}
	case sectionActivities:
		for i, a := range c.Activities() {
			out = append(out, entityItem{title: a.Name, desc: a.String(), index: i})
		}
	case sectionFacilities:
		for i, f := range c.Facilities() {
			out = append(out, entityItem{title: f.Name, desc: f.String(), index: i})
		}
	}
	return out
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Club Deportivo") + "\n" +
		m.theme.Subtitle.Render(m.summary()) + "\n"

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Error.Render(m.toast) + "\n"
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navegar • enter abrir • / buscar • q salir")
		return wrap.Render(header + toast + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenSection:
		body := m.items.View()
		if len(m.items.Items()) == 0 {
			body = m.theme.Title.Render(m.section) + "\n\n(vacío)"
		}
		help := m.theme.Help.Render("esc/b volver • / buscar • q inicio")
		if m.section == sectionActivities {
			help = m.theme.Help.Render("enter ver inscriptos • esc/b volver • q inicio")
		}
		return wrap.Render(header + toast + "\n" + m.theme.Card.Render(body) + "\n" + help)

	case screenDetail:
		card := m.theme.Card.Render(m.detail + "\n" + m.theme.Help.Render("esc/b volver"))
		return wrap.Render(header + toast + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "estado desconocido")
	}
}

func (m model) summary() string {
	if !m.loaded {
		return "Cargando datos…"
	}
	return fmt.Sprintf("%d socios • %d empleados • %d actividades • %d instalaciones",
		len(m.club.Members()), len(m.club.Employees()), len(m.club.Activities()), len(m.club.Facilities()))
}
