package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/san-kum/bondsim/internal/algebra"
	"github.com/san-kum/bondsim/internal/bondgraph"
	"github.com/san-kum/bondsim/internal/config"
	"github.com/san-kum/bondsim/internal/export"
	"github.com/san-kum/bondsim/internal/storage"
	"github.com/san-kum/bondsim/internal/tui"
	"github.com/san-kum/bondsim/internal/viz"
)

var (
	dataDir   string
	themeName string
	preset    string
	markup    bool
	save      bool
	solveFor  []string
	outFile   string
)

var errNoModel = errors.New("no model: pass a yaml file or --preset")

func main() {
	rootCmd := &cobra.Command{
		Use:           "bondsim",
		Short:         "symbolic equations for bond graph models",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	// BONDSIM_DATA and BONDSIM_THEME stand in for unset flags.
	viper.SetEnvPrefix("bondsim")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		dataDir = viper.GetString("data")
		themeName = viper.GetString("theme")
	}

	deriveCmd := &cobra.Command{
		Use:   "derive [model.yaml]",
		Short: "derive the governing equations of a model",
		Args:  cobra.MaximumNArgs(1),
		RunE:  deriveEquations,
	}
	addModelFlags(deriveCmd)
	deriveCmd.Flags().StringVarP(&outFile, "output", "o", "", "also write the equations to a .json or .html file")

	solveCmd := &cobra.Command{
		Use:   "solve [model.yaml]",
		Short: "solve every equation mentioning a symbol",
		Long:  "Symbols are named as name:label, e.g. e:1, n:2,3 or dq:4 for the rate of q₄.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  solveEquations,
	}
	addModelFlags(solveCmd)
	solveCmd.Flags().StringSliceVar(&solveFor, "for", nil, "symbols to solve for (defaults to the model's solve list)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print the equations of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&markup, "markup", false, "print markup instead of text")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in models",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tELEMENTS\tBONDS\tSOLVE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", name, len(p.Elements), len(p.Bonds), strings.Join(p.Solve, ", "))
			}
			return w.Flush()
		},
	}

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "list element kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tDESCRIPTION")
			for _, k := range bondgraph.DefaultRegistry.ListKinds() {
				fmt.Fprintf(w, "%s\t%s\n", k, bondgraph.DefaultRegistry.Describe(k))
			}
			return w.Flush()
		},
	}

	browseCmd := &cobra.Command{
		Use:   "browse [model.yaml]",
		Short: "browse and solve equations interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  browseEquations,
	}
	browseCmd.Flags().StringVar(&preset, "preset", "", "use a built-in model")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a model file to start from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if preset != "" {
				if cfg = config.GetPreset(preset); cfg == nil {
					return fmt.Errorf("unknown preset: %s", preset)
				}
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a built-in model")

	rootCmd.AddCommand(deriveCmd, solveCmd, listCmd, showCmd, exportCmd, presetsCmd, kindsCmd, browseCmd, initCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, viz.RenderError(styles(nil), err))
		stop()
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in model")
	cmd.Flags().BoolVar(&markup, "markup", false, "print markup instead of text")
	cmd.Flags().BoolVar(&save, "save", false, "save the run under the data directory")
}

// loadConfig reads the model file or the named preset.
func loadConfig(args []string) (*config.Config, error) {
	switch {
	case len(args) > 0:
		return config.Load(args[0])
	case preset != "":
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		return cfg, nil
	}
	return nil, errNoModel
}

// styles picks the theme from the flag, then the model file.
func styles(cfg *config.Config) viz.Styles {
	name := themeName
	if name == "" && cfg != nil {
		name = cfg.Output.Theme
	}
	return viz.NewStyles(viz.GetTheme(name))
}

func deriveEquations(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	m, err := cfg.Build()
	if err != nil {
		return err
	}
	derived, err := m.Derive()
	if err != nil {
		return err
	}

	fmt.Print(viz.RenderEquations(styles(cfg), m.Name, derived, markup || cfg.Output.Markup))
	if outFile != "" {
		if err := export.ToFile(outFile, export.NewExportData(m, "", derived)); err != nil {
			return err
		}
		fmt.Printf("exported: %s\n", outFile)
	}
	return saveRun(m, "", derived)
}

func solveEquations(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	m, err := cfg.Build()
	if err != nil {
		return err
	}

	refs := solveFor
	if len(refs) == 0 {
		refs = cfg.Solve
	}
	if len(refs) == 0 {
		return errors.New("nothing to solve for: pass --for")
	}

	targets := make([]algebra.Symbol, len(refs))
	for i, ref := range refs {
		if targets[i], err = m.Symbol(ref); err != nil {
			return err
		}
	}

	results, err := m.SolveAll(cmd.Context(), targets)
	if err != nil {
		return err
	}

	s := styles(cfg)
	for i, r := range results {
		if r.Err != nil {
			fmt.Println(viz.RenderError(s, r.Err))
			continue
		}
		title := fmt.Sprintf("%s: %s", m.Name, r.Target)
		fmt.Print(viz.RenderEquations(s, title, r.Derived, markup || cfg.Output.Markup))
		if err := saveRun(m, refs[i], r.Derived); err != nil {
			return err
		}
	}
	return nil
}

func saveRun(m *bondgraph.Model, solvedFor string, derived []bondgraph.Derived) error {
	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(m, solvedFor, derived)
	if err != nil {
		return err
	}
	fmt.Printf("saved: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tELEMENTS\tBONDS\tEQUATIONS\tSOLVED")

	for _, run := range runs {
		solved := run.SolvedFor
		if solved == "" {
			solved = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Elements,
			run.Bonds,
			run.Equations,
			solved,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	records, err := st.LoadEquations(runID)
	if err != nil {
		return err
	}

	s := styles(nil)
	fmt.Println(s.Title.Render(meta.Model))
	fmt.Println(viz.Separator(s, 40))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range records {
		if markup {
			fmt.Fprintf(w, "%s\t%s\n", r.Element, r.Markup)
			continue
		}
		fmt.Fprintf(w, "%s\t%s = %s\n", r.Element, r.Left, r.Right)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func browseEquations(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	m, err := cfg.Build()
	if err != nil {
		return err
	}
	derived, err := m.Derive()
	if err != nil {
		return err
	}
	return tui.Run(m.Name, derived, styles(cfg))
}
