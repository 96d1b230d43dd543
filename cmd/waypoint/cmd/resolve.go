package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

type resolvedDestination struct {
	Screen  int               `json:"screen"`
	Segment string            `json:"segment"`
	Title   string            `json:"title"`
	Params  map[string]string `json:"params,omitempty"`
}

type resolvedLink struct {
	URL          string                `json:"url"`
	Destinations []resolvedDestination `json:"destinations,omitempty"`
	Error        string                `json:"error,omitempty"`
	Kind         string                `json:"kind,omitempty"`
}

// NewResolveCommand represents the "resolve" command.
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resolve [links]",
		Short:   "Resolves deep links against a route table",
		Args:    cobra.MinimumNArgs(1),
		Example: "waypoint resolve -t routes.toml 'myapp://detail/list?id=42'",
		Run: func(cmd *cobra.Command, args []string) {
			if err := resolveLinks(cmd, args); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringP(FlagTable, "t", "", "Route table file (TOML)")
	cmd.Flags().StringP(FlagLang, "l", "", "Preferred languages for titles, comma separated")
	cmd.Flags().StringSliceP(FlagMessages, "m", nil, "i18n message files for titles (e.g. active.en.toml)")
	cmd.Flags().Bool(FlagJSON, false, "Print results as JSON lines")

	return cmd
}

func resolveLinks(cmd *cobra.Command, args []string) error {
	table, err := loadTable(cmd)
	if err != nil {
		return err
	}

	titles := router.NewTitles()

	messageFiles, _ := cmd.Flags().GetStringSlice(FlagMessages)
	for _, file := range messageFiles {
		if err := titles.LoadMessageFile(file); err != nil {
			return fmt.Errorf("loading messages: %w", err)
		}
	}

	rawLangs, _ := cmd.Flags().GetString(FlagLang)
	langs := splitLanguages(rawLangs)
	asJSON, _ := cmd.Flags().GetBool(FlagJSON)
	logger := waypoint.GetLogger()

	failed := 0

	for _, rawURL := range args {
		link := resolvedLink{URL: rawURL}

		dests, err := table.Resolve(rawURL)
		if err != nil {
			failed++
			link.Error = err.Error()
			link.Kind = failureKind(err)

			logger.Debug("Link not resolved", "url", rawURL, "kind", link.Kind)
		}

		for _, d := range dests {
			link.Destinations = append(link.Destinations, resolvedDestination{
				Screen:  int(d.Screen),
				Segment: d.Segment,
				Title:   titles.For(d, langs...),
				Params:  d.Params,
			})
		}

		if err := printLink(cmd.OutOrStdout(), link, asJSON); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrUnresolved, failed, len(args))
	}

	return nil
}

func loadTable(cmd *cobra.Command) (*router.Table, error) {
	tablePath, _ := cmd.Flags().GetString(FlagTable)
	if len(tablePath) == 0 {
		return nil, ErrNoTableFile
	}

	return router.LoadTable(tablePath)
}

func printLink(out io.Writer, link resolvedLink, asJSON bool) error {
	if asJSON {
		data, err := json.Marshal(link)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, string(data))

		return err
	}

	if len(link.Error) != 0 {
		_, err := fmt.Fprintf(out, "%s: unresolved (%s)\n", link.URL, link.Kind)

		return err
	}

	steps := make([]string, len(link.Destinations))
	for i, d := range link.Destinations {
		steps[i] = fmt.Sprintf("%s [%d]", d.Title, d.Screen)
	}

	_, err := fmt.Fprintf(out, "%s: %s\n", link.URL, strings.Join(steps, " > "))

	return err
}

func splitLanguages(raw string) []string {
	var langs []string

	for _, lang := range strings.Split(raw, ",") {
		if lang = strings.TrimSpace(lang); len(lang) != 0 {
			langs = append(langs, lang)
		}
	}

	return langs
}

func failureKind(err error) string {
	var resolveErr *waypoint.ResolveError

	switch {
	case errors.Is(err, router.ErrSchemeMismatch):
		return "scheme_mismatch"
	case errors.As(err, &resolveErr):
		return resolveErr.Kind.String()
	default:
		return "unknown"
	}
}
