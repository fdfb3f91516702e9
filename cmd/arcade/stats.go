package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how often each game was launched",
	Long: `Prints the launcher's play counts and last-played times, read from the
stats file (--stats).`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	st := loadStats()
	l, err := newLauncher(st)
	if err != nil {
		return err
	}

	now := time.Now()
	t := newTable("Game", "Plays", "Last played")
	seen := make(map[string]bool)
	for _, e := range l.Entries() {
		seen[e.Title] = true
		t.Row(e.Title, strconv.Itoa(l.Stats(e).PlayCount), l.Stats(e).Describe(now))
	}

	// Titles no longer in the catalog still have history.
	for _, title := range st.Titles() {
		if !seen[title] {
			entry := st.Get(title)
			t.Row(title+" (removed)", strconv.Itoa(entry.PlayCount), entry.Describe(now))
		}
	}

	fmt.Printf("Launcher stats (%s)\n", st.Path())
	fmt.Println(t)
	return nil
}
