package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/flintapp/flint-cli/internal/models"
	"github.com/flintapp/flint-cli/internal/shared"
)

// Search performs a one-shot catalog keyword search and records it in the
// local history.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	keyword := cmd.StringArg("keyword")
	if strings.TrimSpace(keyword) == "" {
		return fmt.Errorf("%w: keyword", shared.ErrMissingArgument)
	}

	if _, err := r.requireAuth(); err != nil {
		return err
	}

	r.logger.Info("searching catalog", "keyword", keyword)

	results, err := r.client.SearchContents(ctx, keyword)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.recordSearch(keyword, len(results))

	if cmd.Bool("json") {
		return r.writeJSON(results, cmd.Bool("pretty"))
	}

	if len(results) == 0 {
		return r.writePlain("No results for '%s'\n", keyword)
	}

	r.writePlain("Results for '%s':\n", keyword)
	for i, content := range results {
		r.writePlain("%2d. %s", i+1, content.Title)
		if content.Author != "" {
			r.writePlain(" - %s", content.Author)
		}
		if content.Year > 0 {
			r.writePlain(" (%d)", content.Year)
		}
		r.writePlain("  [id %s]\n", content.ContentID)
	}

	return nil
}

// History lists recent catalog searches, newest first.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.historyRepo()
	if err != nil {
		return err
	}

	records, err := repo.List(map[string]any{"limit": int(cmd.Int("limit"))})
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		type entry struct {
			Keyword     string `json:"keyword"`
			ResultCount int    `json:"resultCount"`
			SearchedAt  string `json:"searchedAt"`
		}
		out := make([]entry, len(records))
		for i, record := range records {
			out[i] = entry{
				Keyword:     record.Keyword(),
				ResultCount: record.ResultCount(),
				SearchedAt:  record.CreatedAt().Format("2006-01-02 15:04:05"),
			}
		}
		return r.writeJSON(out, true)
	}

	if len(records) == 0 {
		return r.writePlain("No searches yet\n")
	}

	for _, record := range records {
		r.writePlain("%s  %-24s %d results\n",
			record.CreatedAt().Format("2006-01-02 15:04"), record.Keyword(), record.ResultCount())
	}

	return nil
}

// recordSearch persists a search to the local history. Failures are logged,
// never surfaced: history is a convenience, not part of the search.
func (r *Runner) recordSearch(keyword string, resultCount int) {
	repo, err := r.historyRepo()
	if err != nil {
		r.logger.Warn("search history unavailable", "error", err)
		return
	}

	if err := repo.Create(models.NewSearchRecord(0, keyword, resultCount)); err != nil {
		r.logger.Warn("failed to record search", "error", err)
	}
}
