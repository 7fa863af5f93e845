package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tastybot/internal/music/catalog"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a songs directory and write the catalog CSV",
	Long: `Walk a songs directory and write songs.csv.

Audio files directly in the root belong to the "EP" album, every
subdirectory is an album named after it. File names look like
"01 Title.mp3" or "01 - Title.mp3".

Examples:
  catalog-gen scan --root songs --out songs.csv
  catalog-gen scan --root songs --out -          # print to stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, _ := cmd.Flags().GetString("root")
		out, _ := cmd.Flags().GetString("out")
		artist, _ := cmd.Flags().GetString("artist")

		songs, err := catalog.Scan(root, artist)
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if out != "-" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()
			w = f
		}

		if err := catalog.WriteCSV(w, songs); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
		if out != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d songs to %s\n", len(songs), out)
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().String("root", "songs", "Directory holding the albums")
	scanCmd.Flags().String("out", "songs.csv", "Output CSV path, - for stdout")
	scanCmd.Flags().String("artist", "Tastycool", "Artist written on every row")
	rootCmd.AddCommand(scanCmd)
}
