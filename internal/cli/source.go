package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/notewall/pkg/errors"
	"github.com/matzehuels/notewall/pkg/layout"
	"github.com/matzehuels/notewall/pkg/pipeline"
	"github.com/matzehuels/notewall/pkg/source"
)

// Environment fallbacks for flags shared by several commands.
const (
	envMongoURI   = "NOTEWALL_MONGO_URI"
	envMongoDB    = "NOTEWALL_MONGO_DB"
	envRedisAddr  = "NOTEWALL_REDIS_ADDR"
	envListenAddr = "NOTEWALL_ADDR"
)

// sourceFlags selects where notes come from: a JSON file argument, or a
// MongoDB collection.
type sourceFlags struct {
	mongo source.MongoConfig
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mongo.URI, "mongo-uri", os.Getenv(envMongoURI), "MongoDB connection string (env "+envMongoURI+")")
	cmd.Flags().StringVar(&f.mongo.Database, "mongo-db", os.Getenv(envMongoDB), "MongoDB database (env "+envMongoDB+")")
	cmd.Flags().StringVar(&f.mongo.Collection, "mongo-collection", source.DefaultCollection, "MongoDB collection")
	cmd.Flags().Int64Var(&f.mongo.Limit, "limit", 0, "maximum number of notes to fetch from MongoDB (0 = all)")
}

// open returns the file source for args[0] when given, otherwise the
// MongoDB source.
func (f *sourceFlags) open(ctx context.Context, args []string) (source.Source, error) {
	if len(args) > 0 {
		return source.NewFileSource(args[0]), nil
	}
	if f.mongo.URI == "" {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "no notes: pass a JSON file or --mongo-uri")
	}
	return source.NewMongoSource(ctx, f.mongo)
}

// layoutFlags are the wall shape flags shared by layout and preview.
type layoutFlags struct {
	columns int
	width   int
	preset  string
	refresh bool
	noCache bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.columns, "columns", "c", 0, "column count (overrides --width)")
	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "viewport width in pixels, resolved through --preset")
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "notes", "breakpoint preset: notes, album")
	_ = cmd.RegisterFlagCompletionFunc("preset", completePreset)
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even when a cached wall exists")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

func completePreset(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{
		layout.PresetNotes + "\tsticky-note wall",
		layout.PresetAlbum + "\tphoto album",
	}, cobra.ShellCompDirectiveNoFileComp
}

// options converts the flags. An explicit --columns must be >= 1.
func (f *layoutFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	opts := pipeline.Options{Width: f.width, Preset: f.preset, Refresh: f.refresh}
	if cmd.Flags().Changed("columns") {
		return opts.WithColumns(f.columns)
	}
	return opts, opts.Validate()
}
