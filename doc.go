// Package yt2alt exports a YouTube account's library to alternative
// platforms.
//
// It reads subscriptions, watch history, liked videos, watch later,
// recommendations, and playlists from a signed-in YouTube account and
// converts them to the import formats of Invidious, Piped, NewPipe,
// FreeTube, and ViewTube.
//
// # Overview
//
// The flow has three stages, each covered by a sub-package:
//
//   - youtube: sign in with an OAuth device flow and read the account's
//     collections, either through the web browse endpoint (youtube.Library)
//     or the public Data API (youtube.DataAPI)
//   - profile: assemble the collections into a platform-neutral Profile
//   - export: convert the Profile to a target platform's format, and
//     invidious: push it straight into a running Invidious server
//
// # Quick Start
//
// Read a profile and save it in the Invidious format:
//
//	ctx := context.Background()
//
//	session := youtube.NewSession(youtube.SessionConfig{
//		ClientID:     clientID,
//		ClientSecret: clientSecret,
//	})
//	err := session.SignIn(ctx, func(url, code string) {
//		fmt.Printf("Go to %s and enter code %s\n", url, code)
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	library := youtube.NewLibrary(youtube.NewBrowseClient(session))
//	assembler := profile.NewAssembler(library)
//	prof, err := assembler.Build(ctx, profile.RequestedFields{
//		Channels: true,
//		History:  true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	doc := export.ToInvidious(prof)
//	if err := export.WriteJSONFile("invidious-profile.json", doc); err != nil {
//		log.Fatal(err)
//	}
//
// Import directly into an Invidious server:
//
//	client := invidious.NewClient("https://invidious.example.org")
//	callback := invidious.NewCallbackServer()
//	if err := callback.Start(); err != nil {
//		log.Fatal(err)
//	}
//	defer callback.Close()
//
//	fmt.Println("Authorize at:", client.AuthorizeURL(callback.URL()))
//	token, err := callback.AwaitToken(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := client.ImportProfile(ctx, token, doc); err != nil {
//		log.Fatal(err)
//	}
//
// # Configuration
//
// The yt2alt command loads settings from environment variables on top of
// built-in defaults:
//
//   - YT2ALT_FEED_LIMIT: Maximum videos read per feed (-1 for unlimited)
//   - YT2ALT_CALLBACK_PORT: Local port of the Invidious token callback
//   - YT2ALT_HTTP_TIMEOUT: Timeout per HTTP request
//   - YT2ALT_OAUTH_CLIENT_ID: OAuth client ID for the device flow
//   - YT2ALT_OAUTH_CLIENT_SECRET: OAuth client secret
//   - YT2ALT_MAX_RETRIES: Maximum retry attempts for transient failures
//   - YT2ALT_INITIAL_BACKOFF: Initial retry backoff duration
//   - YT2ALT_MAX_BACKOFF: Maximum retry backoff duration
//
// # Error Handling
//
// All operations return errors that implement standard Go error handling:
//
//	if errors.Is(err, yt2alt.ErrNotSignedIn) {
//		fmt.Println("Sign in first")
//	}
//
//	var httpErr *yt2alt.HTTPError
//	if errors.As(err, &httpErr) {
//		fmt.Printf("Request failed with status %d\n", httpErr.StatusCode)
//	}
//
// # Partial Results
//
// Reading a large account can fail part-way through. Feed readers return
// the videos collected so far alongside the error, so callers can export
// an incomplete profile rather than lose everything. A nil collection on
// a Profile means it was never requested; an empty non-nil collection
// means it was requested and is empty.
package yt2alt
