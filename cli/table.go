package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type TableType int

const (
	PrintableTable TableType = iota
	InteractiveTable
)

func NewTable(columns []table.Column, rows []table.Row, tableType TableType) *Table {
	options := []table.Option{
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	}

	if tableType == InteractiveTable {
		options = append(options, table.WithFocused(true))
	}

	t := table.New(options...)
	t.SetStyles(tableStyles(tableType))

	return &Table{
		table: t,
		typ:   tableType,
	}
}

// NewKVTable renders a property/value detail pane, sizing the value column
// to the longest entry so IDs, URLs and tokens are never cut off.
func NewKVTable(rows []table.Row) *Table {
	valueWidth := 40
	for _, row := range rows {
		if len(row) > 1 && len(row[1]) > valueWidth {
			valueWidth = len(row[1])
		}
	}
	if valueWidth > 70 {
		valueWidth = 70
	}

	columns := []table.Column{
		{Title: "Property", Width: 15},
		{Title: "Value", Width: valueWidth},
	}

	return NewTable(columns, rows, PrintableTable)
}

func tableStyles(tableType TableType) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)

	if tableType == InteractiveTable {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
	}

	return s
}

type Table struct {
	table table.Model
	typ   TableType
}

func (t *Table) Init() tea.Cmd {
	return nil
}

func (t *Table) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return t, tea.Quit
		}
	}
	t.table, cmd = t.table.Update(msg)
	return t, cmd
}

func (t *Table) View() string {
	return "\n" + t.table.View() + "\n"
}

func (t *Table) Render() error {
	switch t.typ {
	case PrintableTable:
		fmt.Println(t.View())
		return nil
	case InteractiveTable:
		_, err := tea.NewProgram(t).Run()
		return err
	default:
		return fmt.Errorf("unknown table type")
	}
}
