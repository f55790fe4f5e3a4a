package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/aokblast/sicxeasm/service"
)

// Browser is a read-only text-mode viewer over one assembled program:
// its listing, symbol table, and object records. It performs no
// assembly of its own.
type Browser struct {
	App   *tview.Application
	Pages *tview.Pages

	MainLayout  *tview.Flex
	ListingView *tview.TextView
	SymbolsView *tview.TextView
	ObjectView  *tview.TextView
	SearchInput *tview.InputField

	result *service.Result
}

// NewBrowser builds a Browser over result.
func NewBrowser(result *service.Result) *Browser {
	b := &Browser{
		App:    tview.NewApplication(),
		result: result,
	}

	b.initializeViews()
	b.buildLayout()
	b.setupKeyBindings()
	b.RefreshAll()

	return b
}

func (b *Browser) initializeViews() {
	b.ListingView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.ListingView.SetBorder(true).SetTitle(" Listing ")

	b.SymbolsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.SymbolsView.SetBorder(true).SetTitle(" Symbol Table ")

	b.ObjectView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.ObjectView.SetBorder(true).SetTitle(" Object Records ")

	b.SearchInput = tview.NewInputField().
		SetLabel("/ ").
		SetFieldWidth(0)
	b.SearchInput.SetBorder(true).SetTitle(" Symbol Search ")
	b.SearchInput.SetDoneFunc(b.handleSearch)
}

func (b *Browser) buildLayout() {
	top := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(b.ListingView, 0, 2, false).
		AddItem(b.SymbolsView, 0, 1, false)

	b.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 0, 4, false).
		AddItem(b.ObjectView, 8, 0, false).
		AddItem(b.SearchInput, 3, 0, true)

	b.Pages = tview.NewPages().AddPage("main", b.MainLayout, true, true)
}

func (b *Browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			b.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			b.RefreshAll()
			return nil
		}
		return event
	})
}

func (b *Browser) handleSearch(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	name := strings.TrimSpace(b.SearchInput.GetText())
	if name == "" {
		return
	}

	if _, ok := b.result.Program.SymbolTable.Lookup(name); !ok {
		b.ListingView.ScrollToBeginning()
		return
	}
	for i, row := range b.result.Listing {
		if row.Label == name {
			b.ListingView.ScrollTo(i+1, 0) // +1 for the header row
			return
		}
	}
}

// RefreshAll re-renders every panel from the current result.
func (b *Browser) RefreshAll() {
	b.renderListing()
	b.renderSymbols()
	b.renderObject()
}

func (b *Browser) renderListing() {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[yellow]%4s %8s %12s %12s %12s %s[white]\n", "line", "address", "label", "operate", "operand", "opcode")
	for _, row := range b.result.Listing {
		fmt.Fprintf(&sb, "%4d %08X %12s %12s %12s %s\n", row.Line, row.Address, row.Label, row.Operate, row.Operand, row.Opcode)
	}
	b.ListingView.SetText(sb.String())
}

func (b *Browser) renderSymbols() {
	names := b.result.Program.SymbolTable.Names()
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		addr, _ := b.result.Program.SymbolTable.Lookup(name)
		fmt.Fprintf(&sb, "%-12s %06X\n", name, addr)
	}
	b.SymbolsView.SetText(sb.String())
}

func (b *Browser) renderObject() {
	var sb strings.Builder
	fmt.Fprintln(&sb, b.result.Header.String())
	for _, t := range b.result.Texts {
		fmt.Fprintln(&sb, t.String())
	}
	fmt.Fprintln(&sb, b.result.End.String())
	b.ObjectView.SetText(sb.String())
}

// Run starts the interactive event loop; it blocks until the user
// quits (Ctrl+C).
func (b *Browser) Run() error {
	return b.App.SetRoot(b.Pages, true).Run()
}
