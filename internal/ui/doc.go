// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for collection authoring:
//  1. [FormView] : Enter the collection title and description
//  2. [SearchView] : Search the catalog and pick works for the collection
//  3. [EntryListView] : Review picked works, edit reasons, flag spoilers
//  4. [ReasonView] : Edit the recommendation reason for one entry
//  5. [ConfirmView] : Confirm submission
//  6. [SubmitView] : Wait for the backend
//  7. [ResultView] : Display the created collection id or the failure
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Catalog searches run as commands tagged with a request generation; responses
// from superseded searches are discarded so a slow search never overwrites a
// newer result set.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
