/*----------------------------------------------------------------------------------------
 * Copyright (c) Microsoft Corporation. All rights reserved.
 * Licensed under the MIT License. See LICENSE in the project root for license information.
 *---------------------------------------------------------------------------------------*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/poonai/ginit/internal/app"
	"github.com/poonai/ginit/internal/auth"
	"github.com/poonai/ginit/internal/logging"
	"github.com/poonai/ginit/internal/prefs"
	"github.com/poonai/ginit/internal/prompt"
	"github.com/poonai/ginit/internal/remote"
	"github.com/poonai/ginit/internal/ui"
	"github.com/poonai/ginit/internal/vcs"
)

const toolName = "ginit"

type options struct {
	verbose  bool
	apiURL   string
	timeout  time.Duration
	branch   string
	device   bool
	clientID string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   toolName + " [name] [description]",
		Short: "Create a GitHub repository for the current directory and push it",
		Long: `Create a GitHub repository for the current directory and push it.

It will:
1. Stop if the directory is already a git repository
2. Log you in to GitHub, reusing the token from a previous run
3. Create the remote repository (name and description default to the arguments)
4. Write a .gitignore from the entries you pick
5. git init, commit everything as "Initial commit" and push to origin`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", os.Getenv("GINIT_API_URL"), "GitHub API base URL (GitHub Enterprise)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", remote.DefaultTimeout, "Timeout for each GitHub API call")
	cmd.Flags().StringVar(&opts.branch, "branch", vcs.DefaultBranch, "Branch to create and push")
	cmd.Flags().BoolVar(&opts.device, "device", false, "Log in through the browser instead of with a password")
	cmd.Flags().StringVar(&opts.clientID, "client-id", os.Getenv("GINIT_CLIENT_ID"), "OAuth app client id used by --device")

	return cmd
}

func run(ctx context.Context, opts *options, args []string) (err error) {
	logging.SetVerbose(opts.verbose)
	handler := app.NewErrorHandler(os.Stderr, opts.verbose)

	fmt.Println(ui.Banner(toolName))

	dir, err := os.Getwd()
	if err != nil {
		return handler.Handle(err)
	}

	store, err := prefs.Open(toolName)
	if err != nil {
		return handler.Handle(err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = handler.Handle(cerr)
		}
	}()

	client, err := remote.New(remote.WithBaseURL(opts.apiURL), remote.WithTimeout(opts.timeout))
	if err != nil {
		return handler.Handle(err)
	}

	prompter := prompt.NewTUI()
	progress := ui.NewSpinner(os.Stderr)

	authOpts := []auth.Option{auth.WithProgress(progress)}
	if opts.device {
		authOpts = append(authOpts, auth.WithDeviceFlow(remote.NewDeviceFlow(opts.clientID, showDeviceCode)))
	}

	pipeline := &app.App{
		Dir:      dir,
		Check:    vcs.CheckNotInitialized,
		Auth:     auth.NewWorkflow(store, client, prompter, authOpts...),
		Remote:   client,
		Prompter: prompter,
		Progress: progress,
		Pusher:   vcs.NewInitializer(dir, opts.branch, vcs.NewGitRunner(nil)),
	}

	created, err := pipeline.Run(ctx, args)
	if err != nil {
		return handler.Handle(err)
	}

	// the clipboard is a convenience; headless machines have none.
	if cerr := clipboard.WriteAll(created.PushURL); cerr != nil {
		logging.NewLogger(toolName).WithError(cerr).Debug("clipboard unavailable")
	}
	fmt.Println(ui.RenderSuccess("All done!"))
	if created.HTMLURL != "" {
		fmt.Println(created.HTMLURL)
	}
	return nil
}

func showDeviceCode(verificationURI, userCode string) {
	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf(`
Please open the given link: %s and enter the code %s`, verificationURI, userCode)))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
