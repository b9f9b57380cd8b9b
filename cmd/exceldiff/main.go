// Package main provides the CLI entry point for exceldiff.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exceldiff/exceldiff/pkg/exceldiff"
	"github.com/exceldiff/exceldiff/pkg/exceldiff/gitrev"
	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
	"github.com/exceldiff/exceldiff/pkg/exceldiff/output"
	"github.com/exceldiff/exceldiff/pkg/exceldiff/reader"
)

var (
	oldPath     string
	newPath     string
	fromRev     string
	toRev       string
	workingTree bool
	format      string
	outputPath  string
	threshold   float64
	pretty      bool
	noColor     bool
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exceldiff [file.xlsx]",
		Short: "Git-integrated diff for Excel workbooks",
		Long: `exceldiff compares two versions of an Excel workbook and reports
sheet, row, and cell level changes, even when rows have shifted position.

Versions can come from two files (--old/--new), from two git revisions of one
file (--from/--to), or from a revision against the working tree.`,
		Example: `  # Compare the latest commit with its parent
  exceldiff budget.xlsx

  # Compare two specific revisions
  exceldiff --from HEAD~2 --to HEAD budget.xlsx

  # Compare a commit with unstaged changes
  exceldiff --working-tree budget.xlsx

  # Direct file comparison
  exceldiff --old v1.xlsx --new v2.xlsx

  # Machine-readable output
  exceldiff --format csv budget.xlsx > diff.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&oldPath, "old", "", "Old file for direct comparison")
	rootCmd.Flags().StringVar(&newPath, "new", "", "New file for direct comparison")
	rootCmd.Flags().StringVar(&fromRev, "from", "", "Git revision to compare from (default: parent of --to)")
	rootCmd.Flags().StringVar(&toRev, "to", "HEAD", "Git revision to compare to")
	rootCmd.Flags().BoolVar(&workingTree, "working-tree", false, "Compare a revision with the working tree")
	rootCmd.Flags().StringVar(&format, "format", "text", "Output format: text, csv, json")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().Float64Var(&threshold, "threshold", exceldiff.DefaultThreshold, "Similarity threshold in (0,1] for modified-row matching")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads defaults from an exceldiff config file and the environment.
// Explicit flags always win.
func initConfig(cmd *cobra.Command) {
	viper.SetConfigName("exceldiff")
	viper.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("EXCELDIFF")
	viper.AutomaticEnv()

	viper.SetDefault("threshold", exceldiff.DefaultThreshold)
	viper.SetDefault("format", "text")

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("loaded config file")
	}

	if !cmd.Flags().Changed("threshold") {
		threshold = viper.GetFloat64("threshold")
	}
	if !cmd.Flags().Changed("format") {
		format = viper.GetString("format")
	}
}

func run(cmd *cobra.Command, args []string) error {
	log.SetHandler(clihandler.New(os.Stderr))
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	if noColor {
		color.NoColor = true
	}

	initConfig(cmd)

	outFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	directMode := oldPath != "" || newPath != ""
	gitMode := fromRev != "" || workingTree || cmd.Flags().Changed("to")
	if directMode && gitMode {
		return fmt.Errorf("cannot use --old/--new together with --from/--to/--working-tree")
	}

	var oldWB, newWB *models.Workbook
	switch {
	case directMode:
		if oldPath == "" || newPath == "" {
			return fmt.Errorf("direct comparison requires both --old and --new")
		}
		if oldWB, err = reader.ReadFile(oldPath); err != nil {
			return fmt.Errorf("reading %s: %w", oldPath, err)
		}
		if newWB, err = reader.ReadFile(newPath); err != nil {
			return fmt.Errorf("reading %s: %w", newPath, err)
		}
		oldWB.Name = filepath.Base(oldPath)
		newWB.Name = filepath.Base(newPath)

	default:
		if len(args) == 0 {
			return fmt.Errorf("a file argument is required for git comparison")
		}
		file := args[0]
		repo, err := gitrev.Open(filepath.Dir(file))
		if err != nil {
			return err
		}
		if workingTree {
			rev := fromRev
			if rev == "" {
				rev = "HEAD"
			}
			oldWB, newWB, err = repo.CompareWithWorkingTree(file, rev)
		} else {
			oldWB, newWB, err = repo.CompareRevisions(file, fromRev, toRev)
		}
		if err != nil {
			return err
		}
	}

	diff, err := exceldiff.Compare(oldWB, newWB, exceldiff.Options{Threshold: threshold})
	if err != nil {
		return err
	}

	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		if err := output.Write(f, diff, outFormat, pretty); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Diff written to: %s\n", outputPath)
		return nil
	}

	return output.Write(cmd.OutOrStdout(), diff, outFormat, pretty)
}
