// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "config",
				Usage: "Create a configuration file from the template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Where to write the configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in with a raw user id (development backends only)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "kakao",
				Usage:  "Log in with Kakao via the browser",
				Action: r.AuthKakao,
			},
			{
				Name:  "signup",
				Usage: "Complete registration after a first-time Kakao login",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "nickname",
						Aliases:  []string{"n"},
						Usage:    "Nickname for the new account",
						Required: true,
					},
					&cli.IntSliceFlag{
						Name:  "favorite",
						Usage: "Favorite content id (repeatable)",
					},
					&cli.IntSliceFlag{
						Name:  "ott",
						Usage: "Subscribed OTT service id (repeatable)",
					},
				},
				Action: r.AuthSignup,
			},
			{
				Name:   "status",
				Usage:  "Show the active session",
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "Log out and clear the local session",
				Action: r.AuthLogout,
			},
		},
	}
}

// searchCommand handles catalog keyword search
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalog by keyword",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "keyword"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Search,
	}
}

// historyCommand shows recent catalog searches
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recent catalog searches",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of searches to show",
				Value: 20,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.History,
	}
}

// collectionsCommand handles collection operations
func collectionsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "collections",
		Aliases: []string{"col"},
		Usage:   "Browse and publish collections",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List collections",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "cursor",
						Usage: "Pagination cursor from a previous page",
					},
					&cli.IntFlag{
						Name:  "size",
						Usage: "Page size",
						Value: 10,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.CollectionsList,
			},
			{
				Name:  "show",
				Usage: "Show a single collection",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.CollectionsShow,
			},
			{
				Name:    "new",
				Aliases: []string{"create"},
				Usage:   "Author and publish a collection interactively",
				Action:  r.CollectionsNew,
			},
		},
	}
}
