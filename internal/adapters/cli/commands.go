package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"localeaudit/internal/adapters/render"
	"localeaudit/internal/domain"
	"localeaudit/internal/ports/input"
)

// Command builds the command tree.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "localeaudit",
		Short: "Find translation keys with missing values in locale resources",
		Long: `localeaudit walks the locale resource files of an application and lists
every key whose value is empty, with a preview of its translation in a
reference locale.`,
		Version:           fmt.Sprintf("%s (commit: %s, built: %s)", a.info.Version, a.info.Commit, a.info.Date),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	})
	root.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Log at debug level")

	root.AddCommand(a.missingValuesCommand())
	root.AddCommand(a.localesCommand())
	root.AddCommand(a.historyCommand())
	root.AddCommand(a.versionCommand())
	return root
}

type missingValuesOptions struct {
	translate string
	check     string
	length    int
	format    string
	ignore    []string
	strict    bool
	record    bool
	notify    bool
}

func (a *App) missingValuesCommand() *cobra.Command {
	opts := &missingValuesOptions{}
	cmd := &cobra.Command{
		Use:     "missing-values",
		Aliases: []string{"missing"},
		Short:   "List the keys with an empty value",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMissingValues(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.translate, "translate", "t", "", "Locale used for the translation preview (default PREVIEW_LOCALE)")
	cmd.Flags().StringVarP(&opts.check, "check", "c", "", "Comma-separated locales to check (default: all configured locales)")
	cmd.Flags().IntVarP(&opts.length, "length", "l", 0, "Max length of the preview column text (default PREVIEW_LENGTH)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table, json, csv or yaml")
	cmd.Flags().StringSliceVar(&opts.ignore, "ignore", nil, "Glob patterns of keys to skip (default IGNORE_KEYS)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with status 3 when missing values are found")
	cmd.Flags().BoolVar(&opts.record, "record", false, "Store the run in the audit history")
	cmd.Flags().BoolVar(&opts.notify, "notify", false, "Post a summary to the Discord report channel")
	return cmd
}

func (a *App) runMissingValues(cmd *cobra.Command, opts *missingValuesOptions) error {
	req := input.AuditRequest{
		Translate: a.cfg.PreviewLocale,
		Check:     opts.check,
		Length:    a.cfg.PreviewLength,
		Ignore:    a.cfg.IgnoreKeys,
	}
	if cmd.Flags().Changed("translate") {
		req.Translate = opts.translate
	}
	if cmd.Flags().Changed("length") {
		req.Length = opts.length
	}
	if cmd.Flags().Changed("ignore") {
		req.Ignore = opts.ignore
	}

	renderer, err := render.New(opts.format, a.colored(), render.PreviewColumnWidth)
	if err != nil {
		return err
	}

	report, err := a.auditService().Audit(req)
	if err != nil {
		return err
	}
	if err := renderer.Render(a.out, report); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	ctx := cmd.Context()
	if opts.record {
		history, closeDB, err := a.historyService(ctx)
		if err != nil {
			return err
		}
		defer closeDB()
		run, err := history.Record(ctx, report)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.errOut, "recorded audit run #%d\n", run.ID)
	}
	if opts.notify {
		notify, err := a.notifyService()
		if err != nil {
			return err
		}
		if err := notify.Notify(ctx, report); err != nil {
			return err
		}
	}

	if opts.strict && len(report.Rows) > 0 {
		return ErrMissingValues
	}
	return nil
}

func (a *App) localesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the locales audited by default",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			locales, err := a.auditService().ConfiguredLocales()
			if err != nil {
				return err
			}
			for _, l := range locales {
				fmt.Fprintln(a.out, l)
			}
			return nil
		},
	}
}

func (a *App) historyCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the latest recorded audit runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, closeDB, err := a.historyService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			runs, err := history.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, r := range runs {
				fmt.Fprintf(a.out, "#%d\t%s\t%d missing\tpreview %s\tlocales %v\n",
					r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.MissingCount, r.PreviewLocale, r.Locales)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to show")
	return cmd
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "%s\nDate: %s\nCommit: %s\nOS: %s\nArch: %s\n",
				a.info.Version, a.info.Date, a.info.Commit, runtime.GOOS, runtime.GOARCH)
		},
	}
}
