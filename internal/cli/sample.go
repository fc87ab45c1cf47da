package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/notewall/pkg/errors"
	"github.com/matzehuels/notewall/pkg/gallery"
	"github.com/matzehuels/notewall/pkg/source"
)

var sampleLines = []string{
	"Thanks for the coffee this morning.",
	"Dinner on the balcony tonight?",
	"You make every Monday better.",
	"Found the photos from the lake trip!",
	"Remember to water the basil.",
	"I still laugh about the umbrella.",
	"Good luck today, you've got this.",
}

var sampleAuthors = []string{"alex", "sam"}

// sampleCommand generates a note file with random identifiers.
func (c *CLI) sampleCommand() *cobra.Command {
	var (
		count  int
		photos bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate sample notes with random ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return errors.New(errors.ErrCodeInvalidArgument, "count must be >= 0, got %d", count)
			}
			notes := sampleNotes(count, photos, time.Now())

			if output == "" || output == "-" {
				return source.WriteNotes(cmd.OutOrStdout(), notes)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := source.WriteNotes(f, notes); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			printSuccess("Wrote %d sample notes", len(notes))
			printFile(output)
			printNewline()
			printNextStep("Preview", appName+" preview "+output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 12, "number of notes")
	cmd.Flags().BoolVar(&photos, "photos", false, "attach photos to some notes")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// sampleNotes returns n notes, newest first, spaced an hour apart.
func sampleNotes(n int, photos bool, now time.Time) []source.Note {
	notes := make([]source.Note, n)
	for i := range notes {
		notes[i] = source.Note{
			ID:        uuid.NewString(),
			Content:   sampleLines[i%len(sampleLines)],
			Author:    sampleAuthors[i%len(sampleAuthors)],
			CreatedAt: now.Add(-time.Duration(i) * time.Hour).UTC().Truncate(time.Second),
		}
		if photos && i%3 == 0 {
			k := i%gallery.MaxPhotos + 1
			for j := 0; j < k; j++ {
				notes[i].Photos = append(notes[i].Photos, source.Photo{
					ID:  uuid.NewString(),
					URL: fmt.Sprintf("https://example.com/photos/%d-%d.jpg", i, j),
				})
			}
		}
	}
	return notes
}
