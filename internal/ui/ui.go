package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flintapp/flint-cli/internal/draft"
	"github.com/flintapp/flint-cli/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	FormView ViewState = iota
	SearchView
	EntryListView
	ReasonView
	ConfirmView
	SubmitView
	ResultView
)

// Submitter is the slice of the backend the TUI needs to publish a draft.
type Submitter interface {
	CreateCollection(ctx context.Context, req models.CreateCollectionRequest) (string, error)
}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	draft   *draft.Draft
	search  *draft.SearchSession
	backend Submitter

	width  int
	height int

	titleInput   textinput.Model
	descInput    textinput.Model
	keywordInput textinput.Model
	reasonInput  textinput.Model
	formFocus    int

	resultList   list.Model
	entryList    list.Model
	listFocused  bool
	reasonTarget string

	violations   []draft.ValidationError
	collectionID string
	err          error

	help help.Model
	keys keyMap
}

type searchCompletedMsg struct {
	gen     uint64
	results []models.ContentRef
	err     error
}

type submitCompletedMsg struct {
	collectionID string
	err          error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, catalog draft.Catalog, backend Submitter) *Model {
	titleInput := textinput.New()
	titleInput.Placeholder = "Collection title"
	titleInput.CharLimit = 64
	titleInput.Focus()

	descInput := textinput.New()
	descInput.Placeholder = "Description (optional)"
	descInput.CharLimit = 256

	keywordInput := textinput.New()
	keywordInput.Placeholder = "Search the catalog"
	keywordInput.CharLimit = 64

	reasonInput := textinput.New()
	reasonInput.Placeholder = "Why do you recommend this?"
	reasonInput.CharLimit = 256

	resultList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	resultList.Title = "Search Results"
	resultList.SetShowHelp(false)

	entryList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	entryList.Title = "Collection Entries"
	entryList.SetShowHelp(false)

	return &Model{
		ctx:          ctx,
		view:         FormView,
		draft:        draft.New(),
		search:       draft.NewSearchSession(catalog),
		backend:      backend,
		titleInput:   titleInput,
		descInput:    descInput,
		keywordInput: keywordInput,
		reasonInput:  reasonInput,
		resultList:   resultList,
		entryList:    entryList,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init starts the TUI with a blinking cursor on the title field.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resultList.SetSize(msg.Width-4, msg.Height-10)
		m.entryList.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case FormView:
			return m.handleFormKeys(msg)
		case SearchView:
			return m.handleSearchKeys(msg)
		case EntryListView:
			return m.handleEntryListKeys(msg)
		case ReasonView:
			return m.handleReasonKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}
		return m, nil

	case searchCompletedMsg:
		if m.search.Apply(msg.gen, msg.results, msg.err) && m.search.Status() == draft.Succeeded {
			m.syncResultList()
		}
		return m, nil

	case submitCompletedMsg:
		m.collectionID = msg.collectionID
		m.err = msg.err
		m.view = ResultView
		return m, nil
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case FormView:
		return m.renderForm()
	case SearchView:
		return m.renderSearch()
	case EntryListView:
		return m.renderEntryList()
	case ReasonView:
		return m.renderReason()
	case ConfirmView:
		return m.renderConfirm()
	case SubmitView:
		return m.renderSubmit()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "tab":
		if m.formFocus == 0 {
			m.formFocus = 1
			m.titleInput.Blur()
			return m, m.descInput.Focus()
		}
		m.draft.Title = m.titleInput.Value()
		m.draft.Description = m.descInput.Value()
		m.descInput.Blur()
		m.view = SearchView
		return m, m.keywordInput.Focus()
	case "shift+tab":
		if m.formFocus == 1 {
			m.formFocus = 0
			m.descInput.Blur()
			return m, m.titleInput.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.listFocused {
			m.listFocused = false
			return m, m.keywordInput.Focus()
		}
		m.dismissSearch()
		m.view = FormView
		m.formFocus = 0
		return m, m.titleInput.Focus()
	case "tab":
		if m.draft.Len() > 0 {
			m.syncEntryList()
			m.view = EntryListView
			m.keywordInput.Blur()
			return m, nil
		}
		return m, nil
	case "enter":
		if m.listFocused {
			return m, m.addSelectedResult()
		}
		gen, ok := m.search.Begin(m.keywordInput.Value())
		if !ok {
			return m, nil
		}
		m.keywordInput.Blur()
		m.listFocused = true
		return m, m.runSearch(gen, m.keywordInput.Value())
	case "/":
		if m.listFocused {
			m.listFocused = false
			return m, m.keywordInput.Focus()
		}
	}

	var cmd tea.Cmd
	if m.listFocused {
		m.resultList, cmd = m.resultList.Update(msg)
	} else {
		m.keywordInput, cmd = m.keywordInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleEntryListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.violations = nil
		m.view = SearchView
		m.listFocused = false
		return m, m.keywordInput.Focus()
	case "d":
		if item, ok := m.selectedEntry(); ok {
			m.draft.RemoveEntry(item.entry.Content.ContentID)
			m.syncEntryList()
			m.syncResultList()
		}
		return m, nil
	case "s":
		if item, ok := m.selectedEntry(); ok {
			m.draft.ToggleSpoiler(item.entry.Content.ContentID, !item.entry.IsSpoiler)
			m.syncEntryList()
		}
		return m, nil
	case "r":
		if item, ok := m.selectedEntry(); ok {
			m.reasonTarget = item.entry.Content.ContentID
			m.reasonInput.SetValue(item.entry.Reason)
			m.view = ReasonView
			return m, m.reasonInput.Focus()
		}
		return m, nil
	case "enter":
		m.violations = m.draft.ValidateForSubmit()
		if len(m.violations) > 0 {
			return m, nil
		}
		m.view = ConfirmView
		return m, nil
	}

	var cmd tea.Cmd
	m.entryList, cmd = m.entryList.Update(msg)
	return m, cmd
}

func (m *Model) handleReasonKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.reasonInput.Blur()
		m.view = EntryListView
		return m, nil
	case "enter":
		m.draft.UpdateReason(m.reasonTarget, m.reasonInput.Value())
		m.reasonInput.Blur()
		m.syncEntryList()
		m.view = EntryListView
		return m, nil
	}

	var cmd tea.Cmd
	m.reasonInput, cmd = m.reasonInput.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "esc":
		m.view = EntryListView
		return m, nil
	case "y":
		m.view = SubmitView
		return m, m.submit()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "R":
		if m.err == nil {
			m.draft = draft.New()
			m.search.Reset()
			m.titleInput.SetValue("")
			m.descInput.SetValue("")
			m.keywordInput.SetValue("")
			m.resultList.SetItems(nil)
			m.entryList.SetItems(nil)
			m.collectionID = ""
		}
		m.err = nil
		m.view = FormView
		m.formFocus = 0
		m.listFocused = false
		return m, m.titleInput.Focus()
	}
	return m, nil
}

func (m *Model) selectedEntry() (entryItem, bool) {
	selected := m.entryList.SelectedItem()
	if selected == nil {
		return entryItem{}, false
	}
	item, ok := selected.(entryItem)
	return item, ok
}

func (m *Model) addSelectedResult() tea.Cmd {
	selected := m.resultList.SelectedItem()
	if selected == nil {
		return nil
	}
	item, ok := selected.(resultItem)
	if !ok {
		return nil
	}

	if err := m.draft.AddEntry(item.content); err != nil {
		return m.resultList.NewStatusMessage(styles.warn.Render(err.Error()))
	}

	m.dismissSearch()
	return m.keywordInput.Focus()
}

// dismissSearch returns the search panel to a clean slate. Resetting the
// session also advances its generation, so a response still in flight for
// the dismissed search is discarded when it arrives.
func (m *Model) dismissSearch() {
	m.search.Reset()
	m.keywordInput.SetValue("")
	m.keywordInput.Blur()
	m.resultList.SetItems(nil)
	m.listFocused = false
}

func (m *Model) syncResultList() {
	results := m.search.Results()
	items := make([]list.Item, len(results))
	for i, content := range results {
		items[i] = resultItem{content: content, selected: m.draft.Contains(content.ContentID)}
	}
	m.resultList.SetItems(items)
	m.resultList.Title = fmt.Sprintf("Results for '%s'", m.search.Keyword())
	if m.resultList.Width() == 0 {
		m.resultList.SetSize(m.width-4, m.height-10)
	}
}

func (m *Model) syncEntryList() {
	entries := m.draft.Entries()
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = entryItem{rank: i + 1, entry: entry}
	}
	index := m.entryList.Index()
	m.entryList.SetItems(items)
	if index >= len(items) && len(items) > 0 {
		m.entryList.Select(len(items) - 1)
	}
	if m.entryList.Width() == 0 {
		m.entryList.SetSize(m.width-4, m.height-10)
	}
}

func (m *Model) runSearch(gen uint64, keyword string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.search.Fetch(m.ctx, keyword)
		return searchCompletedMsg{gen: gen, results: results, err: err}
	}
}

func (m *Model) submit() tea.Cmd {
	payload := m.draft.Payload()
	return func() tea.Msg {
		id, err := m.backend.CreateCollection(m.ctx, payload)
		return submitCompletedMsg{collectionID: id, err: err}
	}
}

func (m *Model) renderForm() string {
	title := styles.title.Render("New Collection")
	fields := fmt.Sprintf("Title\n%s\n\nDescription\n%s", m.titleInput.View(), m.descInput.View())
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", title, fields, helpView)
}

func (m *Model) renderSearch() string {
	header := fmt.Sprintf("%s\n%s", styles.title.Render("Add Works"), m.keywordInput.View())

	var body string
	switch m.search.Status() {
	case draft.InFlight:
		body = "Searching..."
	case draft.Failed:
		body = fmt.Sprintf("%s\n\n%s",
			styles.err.Render(fmt.Sprintf("Search failed: %v", m.search.Err())),
			m.resultList.View())
	case draft.Succeeded:
		body = m.resultList.View()
	default:
		body = styles.help.Render("Type a keyword and press enter")
	}

	status := fmt.Sprintf("%d/%d selected", m.draft.Len(), draft.MaxEntries)
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.review, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s\n\n%s  %s", header, body, status, helpView)
}

func (m *Model) renderEntryList() string {
	var problems string
	if len(m.violations) > 0 {
		problems = "\n"
		for _, v := range m.violations {
			problems += styles.err.Render("• "+v.Message) + "\n"
		}
	}

	submitKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
	helpView := m.help.ShortHelpView([]key.Binding{submitKey, m.keys.remove, m.keys.reason, m.keys.spoiler, m.keys.back})
	return fmt.Sprintf("%s%s\n\n%s", m.entryList.View(), problems, helpView)
}

func (m *Model) renderReason() string {
	title := styles.title.Render("Recommendation Reason")
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back})
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.reasonInput.View(), helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Publish '%s'?", m.draft.Title))
	info := fmt.Sprintf("\nWorks: %d\nPublic: %v\n", m.draft.Len(), m.draft.IsPublic)
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderSubmit() string {
	return styles.title.Render("Publishing collection...")
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Publish failed: %v\n\nPress R to go back, q to quit", m.err))
	}

	title := styles.ok.Render("✓ Collection Published!")
	info := fmt.Sprintf("\nCollection ID: %s\n", m.collectionID)
	restartKey := key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "new collection"))
	quitKey := key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	helpView := m.help.ShortHelpView([]key.Binding{restartKey, quitKey})
	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}
