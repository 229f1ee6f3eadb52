// Command acdctl checks and converts ACD container group documents offline.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/acd-annotator/acd-annotator-go/internal/annotators"
	"github.com/acd-annotator/acd-annotator-go/internal/config"
	"github.com/acd-annotator/acd-annotator-go/internal/utils"
)

// CLI defines the command-line interface for acdctl.
type CLI struct {
	Globals `embed:""`

	Validate ValidateCmd `cmd:"" help:"Parse container group files and report schema errors"`
	Align    AlignCmd    `cmd:"" help:"Convert the offsets of a container group file"`
	Schema   SchemaCmd   `cmd:"" help:"List record types or the fields of one type"`
}

// Globals holds the flags and streams shared by every command.
type Globals struct {
	Annotator string `short:"a" help:"Register the fields of this annotator kind (${kinds}) before running"`
	Verbose   bool   `short:"v" help:"Log debug output"`

	Out io.Writer `kong:"-"`
	Err io.Writer `kong:"-"`
}

// setup configures logging to Err and registers the selected annotator's
// fields.
func (g *Globals) setup() error {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: g.Err, NoColor: true}).
		With().
		Timestamp().
		Logger()
	level := "warn"
	if g.Verbose {
		level = "debug"
	}
	if err := utils.SetLogLevel(level); err != nil {
		return err
	}

	if g.Annotator == "" {
		return nil
	}
	// Annotators register their container fields when created.
	_, err := annotators.New(&config.AnnotatorSettings{Kind: g.Annotator})
	return err
}

func main() {
	cli := CLI{Globals: Globals{Out: os.Stdout, Err: os.Stderr}}
	ctx := kong.Parse(&cli, options()...)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("acdctl"),
		kong.Description("Validate, realign and inspect ACD container groups"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"kinds": joinKinds()},
	}
}
