// Command uf2tool converts raw firmware images to the UF2 transfer
// format and combines single-frame inputs into one stream.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/moffa90/go-uf2/convert"
	"github.com/moffa90/go-uf2/uf2"
)

const version = "1.0.0"

// CLI defines the command-line interface for uf2tool.
var CLI struct {
	// Global flags
	Verbose bool `short:"v" help:"Enable debug logging"`

	Generate GenerateCmd `cmd:"" help:"Encode a firmware image into UF2 frames"`
	Combine  CombineCmd  `cmd:"" help:"Concatenate single-frame inputs into one stream"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// GenerateCmd encodes a raw firmware image into a UF2 frame stream.
type GenerateCmd struct {
	Input    string `short:"i" required:"" help:"Firmware image to encode" type:"existingfile"`
	Output   string `short:"o" required:"" help:"Destination UF2 file" type:"path"`
	PageSize uint32 `short:"p" default:"1" help:"Target device page size in bytes"`
	Family   string `short:"f" help:"Board family: a known name or a 32-bit ID (e.g. rp2040 or 0xE48BFF56)"`
}

func (c *GenerateCmd) Run() error {
	opts := []convert.Option{
		convert.WithPageSize(c.PageSize),
	}

	if c.Family != "" {
		id, err := uf2.ParseFamily(c.Family)
		if err != nil {
			return fmt.Errorf("%w (known names: %v)", err, uf2.FamilyNames())
		}
		opts = append(opts, convert.WithFamily(id))
	}

	if CLI.Verbose {
		opts = append(opts, convert.WithLogger(&stdLogger{}))
	}

	report, err := convert.GenerateFile(c.Input, c.Output, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %d frames (%d payload bytes, digest %016x) to %s\n",
		report.Frames, report.Bytes, report.Digest, c.Output)
	return nil
}

// CombineCmd concatenates the first frame of each input, in argument order.
type CombineCmd struct {
	Output string   `short:"o" required:"" help:"Destination file" type:"path"`
	Inputs []string `arg:"" help:"Input files, one frame each" type:"existingfile"`
}

func (c *CombineCmd) Run() error {
	n, err := convert.CombineFiles(c.Output, c.Inputs)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %d bytes (%d frames) to %s\n", n, len(c.Inputs), c.Output)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("uf2tool %s (format %s)\n", version, uf2.FormatVersion)
	return nil
}

// stdLogger adapts the standard log package to the convert.Logger
// interface for --verbose output.
type stdLogger struct{}

func (l *stdLogger) Debug(msg string, kv ...interface{}) { l.print("DEBUG", msg, kv) }
func (l *stdLogger) Info(msg string, kv ...interface{})  { l.print("INFO", msg, kv) }
func (l *stdLogger) Error(msg string, kv ...interface{}) { l.print("ERROR", msg, kv) }

func (l *stdLogger) print(level, msg string, kv []interface{}) {
	if len(kv) == 0 {
		log.Printf("%s %s", level, msg)
		return
	}
	log.Printf("%s %s %v", level, msg, kv)
}

func main() {
	log.SetOutput(os.Stderr)

	ctx := kong.Parse(&CLI,
		kong.Name("uf2tool"),
		kong.Description("UF2 firmware transfer format tool"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
