package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/flintapp/flint-cli/internal/api"
	"github.com/flintapp/flint-cli/internal/shared"
)

// CollectionsList lists one page of collections.
func (r *Runner) CollectionsList(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireAuth(); err != nil {
		return err
	}

	page, err := r.client.ListCollections(ctx, cmd.String("cursor"), int(cmd.Int("size")))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	if len(page.Items) == 0 {
		return r.writePlain("No collections\n")
	}

	for _, collection := range page.Items {
		r.writePlain("%s  %s\n", collection.CollectionID, collection.Title)
		if collection.Description != "" {
			r.writePlain("    %s\n", collection.Description)
		}
	}

	if page.HasNext {
		r.writePlainln("More available, next page:")
		r.writePlain("  flint collections list --cursor %s\n", page.NextCursor)
	}

	return nil
}

// CollectionsShow shows a single collection by id.
func (r *Runner) CollectionsShow(ctx context.Context, cmd *cli.Command) error {
	collectionID := cmd.StringArg("id")
	if collectionID == "" {
		return fmt.Errorf("%w: collection id", shared.ErrMissingArgument)
	}

	if _, err := r.requireAuth(); err != nil {
		return err
	}

	collection, err := r.client.GetCollection(ctx, collectionID)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", shared.ErrCollectionNotFound, collectionID)
		}
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(collection, cmd.Bool("pretty"))
	}

	r.writePlain("%s\n", collection.Title)
	if collection.Description != "" {
		r.writePlain("%s\n", collection.Description)
	}
	if collection.CreatedAt != "" {
		r.writePlain("Created: %s\n", collection.CreatedAt)
	}

	return nil
}
