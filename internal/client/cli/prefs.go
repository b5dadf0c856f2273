package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/infowise/internal/client/validate"
)

// Categories prints the catalog grouped by macro-category.
func (a *App) Categories(ctx context.Context) error {
	catalog, err := a.prefsService.Catalog(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}
	if len(catalog) == 0 {
		fmt.Fprintln(a.out, "No categories available.")
		return nil
	}
	for _, m := range catalog {
		fmt.Fprintln(a.out, m.Name)
		for _, c := range m.Categories {
			fmt.Fprintf(a.out, "  [%d] %s\n", c.ID, c.Name)
		}
	}
	return nil
}

// Prefs prints the saved category selection and delivery hour.
func (a *App) Prefs(ctx context.Context) error {
	p, err := a.prefsService.Current(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}
	if !p.HasCategories() {
		fmt.Fprintln(a.out, "Categories: none")
	} else {
		fmt.Fprintf(a.out, "Categories: %s\n", joinInts(p.CategoryIDs))
	}
	fmt.Fprintf(a.out, "Delivery hour: %02d:00\n", p.Hour())
	return nil
}

// SetPrefs saves a new selection. args may carry the ids (comma separated)
// and the hour; whatever is missing is prompted for. The feed reloads after
// a successful save.
func (a *App) SetPrefs(ctx context.Context, args []string) error {
	current, err := a.prefsService.Current(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	var idsText, hourText string
	if len(args) > 0 {
		idsText = args[0]
	} else {
		idsText, err = getSimpleText(a.reader, "Enter category ids separated by commas", a.out)
		if err != nil {
			return err
		}
	}
	if len(args) > 1 {
		hourText = args[1]
	} else {
		hourText, err = getSimpleText(a.reader, fmt.Sprintf("Enter delivery hour 0-23 (empty keeps %d)", current.Hour()), a.out)
		if err != nil {
			return err
		}
	}

	ids, err := ParseIDs(idsText)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}
	hour, err := ParseHour(hourText, current.Hour())
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	saved, err := a.prefsService.Save(ctx, ids, hour)
	if err != nil {
		var fields validate.Errors
		if errors.As(err, &fields) {
			for _, fe := range fields {
				fmt.Fprintf(a.out, "  %s: %s\n", fe.Field, fe.Message)
			}
		} else {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Preferences saved: %s at %02d:00\n", joinInts(saved.CategoryIDs), saved.Hour())
	if s, ok := a.sessions.Current(); ok {
		a.feed.Trigger(ctx, &s)
	}
	return nil
}

// Status prints who is signed in, the connectivity mode and the feed state.
func (a *App) Status(ctx context.Context) error {
	if s, ok := a.sessions.Current(); ok {
		fmt.Fprintf(a.out, "User: %s (id %s, %s)\n", s.Email, s.UserID, s.Role)
	} else {
		fmt.Fprintln(a.out, "User: signed out")
	}
	mode := a.Mode()
	if mode == "" {
		mode = "unknown"
	}
	fmt.Fprintf(a.out, "Mode: %s\n", mode)

	snap := a.feed.Snapshot()
	fmt.Fprintf(a.out, "Feed: %s, %d stories\n", snap.State, len(snap.Cards))
	if snap.Cycle != "" {
		fmt.Fprintf(a.out, "Last load: %s\n", snap.Cycle)
	}
	return nil
}

func joinInts(ids []int) string {
	sorted := slices.Sorted(slices.Values(ids))
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}
