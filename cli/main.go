// Command yt2alt exports a YouTube account's library to alternative
// platforms: Invidious (direct import or file), Piped, NewPipe,
// FreeTube, and ViewTube.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"yt2alt/config"
	"yt2alt/export"
	"yt2alt/internal/httpx"
	"yt2alt/internal/report"
	"yt2alt/invidious"
	"yt2alt/profile"
	"yt2alt/youtube"
)

const version = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:           "yt2alt",
		Short:         "Export your YouTube library to alternative platforms",
		Long:          "yt2alt reads your YouTube account data and exports it to Invidious,\nPiped, NewPipe, FreeTube, or ViewTube.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the yt2alt version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("yt2alt v%s\n", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runExport drives the interactive flow: consent, sign-in, collection
// selection, profile assembly, target export, sign-out.
func runExport(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	p := newPrompter(os.Stdin, os.Stdout)

	proceed, err := p.confirm("This tool will log into your Youtube account, read your data, and allow\nyou to import it to other platforms, such as Invidious. Continue?", true)
	if err != nil || !proceed {
		return err
	}

	session := youtube.NewSession(youtube.SessionConfig{
		ClientID:     cfg.OAuthClientID,
		ClientSecret: cfg.OAuthClientSecret,
	})
	err = session.SignIn(ctx, func(verificationURL, userCode string) {
		fmt.Printf("Go to %s in your browser and enter code %s to authenticate.\n", verificationURL, userCode)
		open, err := p.confirm("Open the url in the browser now?", true)
		if err == nil && open {
			if err := openBrowser(verificationURL); err != nil {
				fmt.Printf("Could not open a browser, go to %s manually.\n", verificationURL)
			}
		}
	})
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	rep := report.New()

	httpCfg := httpx.DefaultConfig()
	httpCfg.Timeout = cfg.HTTPTimeout
	httpCfg.Retry = cfg.RetryConfig()
	browser := youtube.NewBrowseClient(session, youtube.WithHTTPClient(httpx.New(httpCfg)))
	library := youtube.NewLibrary(browser)

	rep.Stage("Reading library")
	refs, err := library.Playlists(ctx)
	if err != nil {
		return fmt.Errorf("read library playlists: %w", err)
	}

	fields, err := selectFields(p, refs)
	if err != nil {
		return err
	}

	assembler := profile.NewAssembler(library,
		profile.WithFeedLimit(cfg.FeedLimit),
		profile.WithProgress(func(stage string) {
			rep.Stage("Reading " + stage)
		}),
	)
	prof, err := assembler.Build(ctx, fields)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}

	if err := exportProfile(ctx, p, rep, cfg, prof); err != nil {
		return err
	}

	rep.Stage("Signing out")
	if err := session.SignOut(ctx); err != nil {
		rep.Warn("sign out failed: %v", err)
	}

	rep.Done()
	return nil
}

// Fixed collection entries of the selection menu, ahead of the
// per-playlist entries.
var collectionOptions = []string{
	"Subscriptions",
	"Watch history",
	"Liked videos",
	"Watch later",
	"Recommended videos",
}

// selectFields asks which collections to read and maps the answer to
// requested fields.
func selectFields(p *prompter, refs []profile.PlaylistRef) (profile.RequestedFields, error) {
	options := append([]string{}, collectionOptions...)
	for _, ref := range refs {
		options = append(options, "Playlist: "+ref.Title)
	}

	picked, err := p.multiSelect("Select the items to import from Youtube", options)
	if err != nil {
		return profile.RequestedFields{}, err
	}

	var fields profile.RequestedFields
	for _, i := range picked {
		switch i {
		case 0:
			fields.Channels = true
		case 1:
			fields.History = true
		case 2:
			fields.LikedVideos = true
		case 3:
			fields.WatchLater = true
		case 4:
			fields.HomeFeed = true
		default:
			if fields.PlaylistIDs == nil {
				fields.PlaylistIDs = make(map[string]bool)
			}
			fields.PlaylistIDs[refs[i-len(collectionOptions)].ID] = true
		}
	}
	return fields, nil
}

// Export target menu entries.
var exportTargets = []string{
	"Invidious (direct import)",
	"Invidious (save to file)",
	"Piped (save to file)",
	"NewPipe (save to file)",
	"FreeTube (save to file)",
	"ViewTube (save to file)",
}

// exportProfile asks for the target platform and runs its export.
func exportProfile(ctx context.Context, p *prompter, rep *report.Reporter, cfg *config.Config, prof *profile.Profile) error {
	choice, err := p.selectOption("Select platform to export to", exportTargets)
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		return exportInvidiousDirect(ctx, p, rep, cfg, prof)
	case 1:
		return exportInvidiousFile(p, rep, prof)
	case 2:
		return exportPipedFiles(p, rep, prof)
	case 3:
		return exportNewPipeFile(p, rep, prof)
	case 4:
		return exportFreeTubeFiles(p, rep, prof)
	case 5:
		return exportViewTubeFile(p, rep, prof)
	}
	return nil
}

// exportInvidiousDirect imports the profile straight into a running
// Invidious server: probe, token authorization via the local callback,
// chunked import, token unregister.
func exportInvidiousDirect(ctx context.Context, p *prompter, rep *report.Reporter, cfg *config.Config, prof *profile.Profile) error {
	server, err := p.input("Enter the Invidious server URL", "")
	if err != nil {
		return err
	}
	if server == "" {
		return fmt.Errorf("no server URL given")
	}

	client := invidious.NewClient(server)
	if !client.Ping(ctx) {
		return fmt.Errorf("%s does not look like a reachable Invidious server", client.Server())
	}

	callback := invidious.NewCallbackServerOn(cfg.CallbackPort)
	if err := callback.Start(); err != nil {
		return fmt.Errorf("start token callback: %w", err)
	}
	defer callback.Close()

	authURL := client.AuthorizeURL(callback.URL())
	fmt.Printf("Open %s in your browser and approve the requested permissions.\n", authURL)
	open, err := p.confirm("Open the url in the browser now?", true)
	if err == nil && open {
		if err := openBrowser(authURL); err != nil {
			fmt.Printf("Could not open a browser, go to %s manually.\n", authURL)
		}
	}

	rep.Stage("Waiting for authorization")
	token, err := callback.AwaitToken(ctx)
	if err != nil {
		return fmt.Errorf("wait for access token: %w", err)
	}

	doc := export.ToInvidious(prof)
	if doc == nil {
		rep.Warn("nothing to export")
		return nil
	}

	rep.Stage("Importing profile")
	client.Progress = func(label string, current, total int) {
		rep.Step(label, current, total)
	}
	if err := client.ImportProfile(ctx, token, doc); err != nil {
		return fmt.Errorf("import profile: %w", err)
	}

	if err := client.UnregisterToken(ctx, token); err != nil {
		rep.Warn("unregister token failed: %v", err)
	}

	rep.Info("Profile imported to %s.", client.Server())
	return nil
}

func exportInvidiousFile(p *prompter, rep *report.Reporter, prof *profile.Profile) error {
	doc := export.ToInvidious(prof)
	if doc == nil {
		rep.Warn("nothing to export")
		return nil
	}

	path, err := p.savePath("invidious-profile.json")
	if err != nil {
		return err
	}
	if err := export.WriteJSONFile(path, doc); err != nil {
		return err
	}
	rep.Info("Profile saved to %s.", path)
	return nil
}

func exportPipedFiles(p *prompter, rep *report.Reporter, prof *profile.Profile) error {
	if prof.History != nil {
		rep.Warn("Piped does not support importing watch history, it will be skipped")
	}

	wrote := false
	if subs := export.ToPipedSubscriptions(prof); subs != nil {
		path, err := p.savePath("piped-subscriptions.json")
		if err != nil {
			return err
		}
		if err := export.WriteJSONFile(path, subs); err != nil {
			return err
		}
		rep.Info("Subscriptions saved to %s.", path)
		wrote = true
	}

	if playlists := export.ToPipedPlaylists(prof); playlists != nil {
		path, err := p.savePath("piped-playlists.json")
		if err != nil {
			return err
		}
		if err := export.WriteJSONFile(path, playlists); err != nil {
			return err
		}
		rep.Info("Playlists saved to %s.", path)
		wrote = true
	}

	if !wrote {
		rep.Warn("nothing to export")
	}
	return nil
}

func exportNewPipeFile(p *prompter, rep *report.Reporter, prof *profile.Profile) error {
	subs := export.ToNewPipeSubscriptions(prof)
	if subs == nil {
		rep.Warn("nothing to export")
		return nil
	}

	path, err := p.savePath("newpipe-subscriptions.json")
	if err != nil {
		return err
	}
	if err := export.WriteJSONFile(path, subs); err != nil {
		return err
	}
	rep.Info("Subscriptions saved to %s.", path)
	return nil
}

func exportFreeTubeFiles(p *prompter, rep *report.Reporter, prof *profile.Profile) error {
	wrote := false
	if subs := export.ToFreeTubeSubscriptions(prof); subs != nil {
		path, err := p.savePath("freetube-subscriptions.db")
		if err != nil {
			return err
		}
		if err := export.WriteFreeTubeSubscriptionsFile(path, subs); err != nil {
			return err
		}
		rep.Info("Subscriptions saved to %s.", path)
		wrote = true
	}

	if history := export.ToFreeTubeHistory(prof); history != nil {
		path, err := p.savePath("freetube-history.db")
		if err != nil {
			return err
		}
		if err := export.WriteFreeTubeHistoryFile(path, history); err != nil {
			return err
		}
		rep.Info("History saved to %s.", path)
		wrote = true
	}

	if !wrote {
		rep.Warn("nothing to export")
	}
	return nil
}

func exportViewTubeFile(p *prompter, rep *report.Reporter, prof *profile.Profile) error {
	subs := export.ToViewTubeSubscriptions(prof)
	if subs == nil {
		rep.Warn("nothing to export")
		return nil
	}

	path, err := p.savePath("viewtube-subscriptions.json")
	if err != nil {
		return err
	}
	if err := export.WriteJSONFile(path, subs); err != nil {
		return err
	}
	rep.Info("Subscriptions saved to %s.", path)
	return nil
}
