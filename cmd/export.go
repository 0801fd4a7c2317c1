package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/runway/internal/store"
)

var flagDBPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write scenario results to a SQLite database",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagDBPath, "db", "", "SQLite database path (default from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	r, err := setup()
	if err != nil {
		return err
	}

	path := r.cfg.Export.DBPath
	if cmd.Flags().Changed("db") {
		path = flagDBPath
	}
	if path == "" {
		return fmt.Errorf("no export database: pass --db or set [export] db_path")
	}

	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	for _, res := range r.scenarios {
		if err := db.SaveResult(res, now); err != nil {
			return err
		}
		r.log.WithFields(logrus.Fields{
			"scenario": res.Name,
			"months":   res.Series.Months(),
			"path":     path,
		}).Info("scenario exported")
	}

	fmt.Printf("  Exported %d scenario(s) to %s\n", len(r.scenarios), path)
	return nil
}
