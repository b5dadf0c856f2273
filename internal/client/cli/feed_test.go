package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmitrijs2005/infowise/internal/client/feed"
	"github.com/stretchr/testify/require"
)

func TestRenderFeed_States(t *testing.T) {
	tests := []struct {
		snap feed.Snapshot
		want string
	}{
		{feed.Snapshot{State: feed.StateUnauthenticated}, "Sign in to see your news."},
		{feed.Snapshot{State: feed.StateLoading, Loading: true}, "Loading news…"},
		{feed.Snapshot{State: feed.StateNoPreferences}, "You have not chosen any categories yet."},
		{feed.Snapshot{State: feed.StateLoadFailed, HasPreferences: true}, "Could not load your news right now."},
		{feed.Snapshot{State: feed.StateLoaded, HasPreferences: true}, "No news yet for your categories."},
	}
	for _, tt := range tests {
		t.Run(tt.snap.State.String(), func(t *testing.T) {
			var buf bytes.Buffer
			renderFeed(&buf, tt.snap)
			require.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestRenderFeed_Cards(t *testing.T) {
	var buf bytes.Buffer
	renderFeed(&buf, feed.Snapshot{State: feed.StateLoaded, Cards: []feed.Card{
		{ID: 1, Title: "Bolsa sube", MacroCategory: "Economía", Category: "Mercados", Summary: "Resumen", Date: "05/03/2024", Span: feed.SpanFor(1)},
		{ID: 2, Title: "Sin categoría", Date: "—", Span: feed.SpanFor(2)},
	}})

	out := buf.String()
	require.Contains(t, out, "#1 [2x2] Economía · Mercados  05/03/2024\n    Bolsa sube\n    Resumen\n")
	require.Contains(t, out, "#2 [1x1] —  —\n    Sin categoría\n")
}

func TestRefresh_LoadsForCurrentSession(t *testing.T) {
	ta := newTestApp(t)
	s := ta.signIn()
	ta.feed.snap = feed.Snapshot{State: feed.StateLoaded}

	require.NoError(t, ta.Refresh(context.Background()))
	require.Len(t, ta.feed.loaded, 1)
	require.Equal(t, s, *ta.feed.loaded[0])
}

func TestRefresh_SignedOut(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.Refresh(context.Background()))
	require.Len(t, ta.feed.loaded, 1)
	require.Nil(t, ta.feed.loaded[0])
}
