package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
	"github.com/dylanblandino12/moodys-data-quality-lab/profilers"
	"github.com/dylanblandino12/moodys-data-quality-lab/reporters"
	"github.com/dylanblandino12/moodys-data-quality-lab/repositories"
	"github.com/dylanblandino12/moodys-data-quality-lab/rules"
	"github.com/dylanblandino12/moodys-data-quality-lab/sources"
	"github.com/dylanblandino12/moodys-data-quality-lab/utils"
)

// Cli represents the command-line interface
type Cli struct {
	reportFormat string
	outputDir    string
	settingsPath string
	historyPath  string
	scorecardDB  string
	tableName    string
	pattern      string
}

// Execute sets up and runs the root command
func (cli *Cli) Execute() error {
	rootCmd := &cobra.Command{
		Use:   "dqlab",
		Short: "dqlab profiles issuer reference data for quality defects.",
	}

	profileCmd := cli.createProfileCommand()

	rootCmd.AddCommand(profileCmd)

	return rootCmd.Execute()
}

// createProfileCommand creates the 'profile' subcommand with its flags and subcommands
func (cli *Cli) createProfileCommand() *cobra.Command {

	profileCmd := &cobra.Command{
		Use:     "profile",
		Short:   "Profile an issuers dataset and produce a quality scorecard.",
		Version: Version,
	}

	profileCmd.PersistentFlags().StringVar(&cli.reportFormat, "report", "xlsx", "Report format (supported: xlsx, json)")
	profileCmd.PersistentFlags().StringVar(&cli.outputDir, "output", ".", "Directory the reports are written to")
	profileCmd.PersistentFlags().StringVar(&cli.settingsPath, "settings", "", "Optional TOML file tuning the rule registry")
	profileCmd.PersistentFlags().StringVar(&cli.historyPath, "history", "", "Optional bbolt file recording scorecard runs")
	profileCmd.PersistentFlags().StringVar(&cli.scorecardDB, "scorecard-db", "", "Optional SQLite file the scorecard is exported to")

	profileCsvCmd := &cobra.Command{
		Use:   "csv <FILE>",
		Short: "Profile a single CSV issuers dataset.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source := sources.NewCsvIssuerSource(args[0])
			source.Progress = utils.NewBarProgressReporter(0, "Loading issuers")
			cli.runProfile(source, args[0])
		},
	}

	profileSqliteCmd := &cobra.Command{
		Use:   "sqlite <DB_FILE>",
		Short: "Profile the issuers table in a SQLite database.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source := &sources.SqliteIssuerSource{Path: args[0], Table: cli.tableName}
			cli.runProfile(source, args[0])
		},
	}
	profileSqliteCmd.Flags().StringVar(&cli.tableName, "table", sources.DefaultIssuersTable, "Name of the issuers table")

	profileDirCmd := &cobra.Command{
		Use:   "dir [DIRECTORY]",
		Short: "Profile every matching CSV in the specified directory (defaults to CWD).",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var directory string
			if len(args) == 0 {
				cwd, err := os.Getwd()
				if err != nil {
					log.Fatalf("Failed to get current working directory: %v", err)
				}
				directory = cwd
			} else {
				directory = args[0]
			}

			source := &sources.GlobIssuerSource{Directory: directory, Pattern: cli.pattern}
			cli.runProfile(source, directory)
		},
	}
	profileDirCmd.Flags().StringVar(&cli.pattern, "pattern", "*.csv", "Glob pattern selecting dataset files")

	profileCmd.AddCommand(profileCsvCmd)
	profileCmd.AddCommand(profileSqliteCmd)
	profileCmd.AddCommand(profileDirCmd)
	return profileCmd
}

func (cli *Cli) runProfile(source core.IssuerSource, target string) {
	settings, err := rules.LoadSettings(cli.settingsPath)
	if err != nil {
		log.Fatal(err)
	}

	reporter, err := reporters.CreateReporter(cli.reportFormat, cli.outputDir, "issuers")
	if err != nil {
		log.Fatal(err)
	}

	var repository core.ScorecardRepository
	if cli.scorecardDB != "" {
		repository, err = repositories.NewSqliteScorecardRepository(cli.scorecardDB)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := repository.Close(); err != nil {
				log.Printf("Error closing repository: %v", err)
			}
		}()
	} else {
		repository = repositories.NewFileBasedScorecardRepository()
		defer func() {
			if err := repository.Clear(); err != nil {
				log.Printf("Error clearing repository: %v", err)
			}
		}()
	}

	profiler := &profilers.DatasetProfiler{
		Source:     source,
		Rules:      rules.InitializeRules(settings),
		Repository: repository,
		Reporter:   reporter,
	}
	if cli.historyPath != "" {
		profiler.History = &utils.RunHistory{Path: cli.historyPath}
	}

	if err := profiler.Profile(filepath.Base(target)); err != nil {
		log.Fatalf("Error profiling '%s': %v", target, err)
	}
}
