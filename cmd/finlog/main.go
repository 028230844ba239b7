// Command finlog is a small inspection tool for the finlog library: it
// prints the library version, the registered severity-level table, and can
// run a demonstration logging session.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/finlog/finlog"
	"github.com/finlog/finlog/core"
	"github.com/finlog/finlog/enums"
)

var rootCmd = &cobra.Command{
	Use:           "finlog",
	Short:         "Inspect the finlog logging library",
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the library version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(finlog.Version)
	},
}

var numericLevels bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the severity-level table",
	Long: `Print every registered severity level in numeric order, most severe
first: the conventional five plus the fine-grained levels interleaved
between them.`,
	Run: func(cmd *cobra.Command, args []string) {
		printLevels()
	},
}

func printLevels() {
	// The conventional codes anchor the table; fine levels fill the gaps.
	codes := []core.Level{
		core.CriticalLevel,
		core.ErrorLevel,
		core.WarningLevel,
		core.InfoLevel,
		core.DebugLevel,
		core.NotSetLevel,
	}
	seen := make(map[core.Level]bool)
	for _, c := range codes {
		seen[c] = true
	}
	for _, nl := range finlog.FineLevels() {
		if !seen[nl.Level] {
			codes = append(codes, nl.Level)
			seen[nl.Level] = true
		}
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] > codes[j] })

	for _, code := range codes {
		if numericLevels {
			fmt.Printf("%3d %s\n", int(code), core.LevelName(code))
			continue
		}
		fmt.Printf("%-8s %d\n", core.LevelName(code), int(code))
	}
}

// levelValue is a pflag.Value that parses registered level names.
type levelValue struct {
	level core.Level
}

func (v *levelValue) String() string {
	return core.LevelName(v.level)
}

func (v *levelValue) Set(name string) error {
	level, err := finlog.ParseLevel(name)
	if err != nil {
		return err
	}
	v.level = level
	return nil
}

func (v *levelValue) Type() string {
	return "level"
}

var _ pflag.Value = (*levelValue)(nil)

var (
	demoLevel = levelValue{level: core.InfoLevel}
	demoFile  string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Activate a session and log one record at every level",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []finlog.Option{finlog.WithAnnounceLabel("finlog demo")}
		if demoFile != "" {
			opts = append(opts, finlog.WithFilePath(demoFile))
		}
		if err := finlog.Activate(demoLevel.level, opts...); err != nil {
			return err
		}
		defer finlog.Deactivate()

		log := finlog.NewLogger("demo")
		for _, nl := range finlog.FineLevels() {
			log.Log(nl.Level, "message at %s (%d)", nl.Name, int(nl.Level))
		}
		finlog.Flush()
		return nil
	},
}

func init() {
	levelsCmd.Flags().BoolVarP(&numericLevels, "numeric", "n", false,
		"print the numeric code before the name")
	demoCmd.Flags().Var(&demoLevel, "level", "minimum severity by name, e.g. L5 or WARNING")
	demoCmd.Flags().StringVar(&demoFile, "file", "", "also log to this file")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(enums.ReturnBadCommand))
	}
	os.Exit(int(enums.ReturnClean))
}
