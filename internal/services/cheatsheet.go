package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/autokey/internal/domain"
	"github.com/renato0307/autokey/internal/theme"
)

// maxDockKeys is how many pinned applications the sheet lists (F1..F12)
const maxDockKeys = 12

// CheatSheet renders the startup summary of every binding
type CheatSheet struct {
	bindings domain.Bindings
	fallback domain.FallbackBindings
}

// NewCheatSheet creates a new CheatSheet
func NewCheatSheet(bindings domain.Bindings, fallback domain.FallbackBindings) *CheatSheet {
	return &CheatSheet{bindings: bindings, fallback: fallback}
}

type sheetRow struct {
	key  string
	desc string
}

// Render writes the cheat sheet to w, styled for whatever w is
func (c *CheatSheet) Render(w io.Writer) error {
	styles := theme.NewStyles(lipgloss.NewRenderer(w))
	rule := styles.Rule.Render(strings.Repeat("-", theme.SheetWidth))
	banner := styles.Rule.Render(strings.Repeat("=", theme.SheetWidth))

	var b strings.Builder
	b.WriteString("\n" + banner + "\n")
	b.WriteString(styles.Banner.Render("AutoKey Cheat Sheet") + "\n")
	b.WriteString(banner + "\n")

	sections := []struct {
		title string
		key   lipgloss.Style
		rows  []sheetRow
	}{
		{"Triplet Commands:", styles.Triplet, c.rows(domain.TriggerTriplet)},
		{"Function Key Commands:", styles.Func, c.rows(domain.TriggerNamed)},
		{"Chord Commands:", styles.Chord, c.rows(domain.TriggerChord)},
		{"Dock Commands (Function Keys):", styles.Dock, c.dockRows()},
	}

	for _, s := range sections {
		b.WriteString(styles.Section.Render(s.title) + "\n")
		b.WriteString(rule + "\n")
		if len(s.rows) == 0 {
			b.WriteString(styles.Empty.Render("(none)") + "\n")
			continue
		}
		for _, r := range s.rows {
			b.WriteString(s.key.Render(fmt.Sprintf("%-10s", r.key)) + " " + styles.Desc.Render(r.desc) + "\n")
		}
	}

	b.WriteString("\n" + banner + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// rows lists the configured triggers of one kind in display order
func (c *CheatSheet) rows(kind domain.TriggerKind) []sheetRow {
	var ids []string
	for id := range c.bindings {
		if k, ok := domain.ClassifyTriggerID(id); ok && k == kind {
			ids = append(ids, id)
		}
	}

	if kind == domain.TriggerNamed {
		sort.Slice(ids, func(i, j int) bool {
			a, _ := domain.FunctionKeyIndex(ids[i])
			b, _ := domain.FunctionKeyIndex(ids[j])
			return a < b
		})
	} else {
		sort.Strings(ids)
	}

	rows := make([]sheetRow, 0, len(ids))
	for _, id := range ids {
		key := id
		if kind == domain.TriggerNamed {
			key = strings.ToUpper(id)
		}
		rows = append(rows, sheetRow{key: key, desc: c.bindings[id].Describe()})
	}
	return rows
}

func (c *CheatSheet) dockRows() []sheetRow {
	var rows []sheetRow
	for i, app := range c.fallback {
		if i >= maxDockKeys {
			break
		}
		rows = append(rows, sheetRow{key: fmt.Sprintf("F%d", i+1), desc: "Activate " + app})
	}
	return rows
}
