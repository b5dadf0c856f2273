package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/infowise/internal/client/feed"
)

// Feed prints the current home feed without fetching anything.
func (a *App) Feed(ctx context.Context) error {
	renderFeed(a.out, a.feed.Snapshot())
	return nil
}

// Refresh reloads the feed for the current session and prints it.
func (a *App) Refresh(ctx context.Context) error {
	s, ok := a.sessions.Current()
	if !ok {
		a.feed.Load(ctx, nil)
	} else {
		a.feed.Load(ctx, &s)
	}
	renderFeed(a.out, a.feed.Snapshot())
	return nil
}

func renderFeed(w io.Writer, snap feed.Snapshot) {
	switch snap.State {
	case feed.StateUnauthenticated:
		fmt.Fprintln(w, "Sign in to see your news.")
		return
	case feed.StateLoading:
		fmt.Fprintln(w, "Loading news…")
	case feed.StateNoPreferences:
		fmt.Fprintln(w, "You have not chosen any categories yet. Use 'categories' and 'setprefs'.")
	case feed.StateLoadFailed:
		fmt.Fprintln(w, "Could not load your news right now. Try 'refresh' later.")
	case feed.StateLoaded:
		if len(snap.Cards) == 0 {
			fmt.Fprintln(w, "No news yet for your categories.")
		}
	}

	for _, c := range snap.Cards {
		fmt.Fprintf(w, "#%d [%dx%d] %s  %s\n", c.ID, c.Span.Cols, c.Span.Rows, c.Label(), c.Date)
		fmt.Fprintf(w, "    %s\n", c.Title)
		if c.Summary != "" {
			fmt.Fprintf(w, "    %s\n", c.Summary)
		}
	}
}
