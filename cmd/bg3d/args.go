package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

const usageLine = "Usage: bg3d inputPath.bg3d [-r] [-o outputName]"

var errUsage = errors.New("usage")

type options struct {
	input  string
	raw    bool   // -r: field-by-field dump on stdout
	output string // -o: export textures and scene as output.*

	configFile string
	layout     string
	formats    string
	scale      int
}

// parseArgs accepts the input path anywhere among the flags.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("bg3d", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.raw, "r", false, "Print every field with its byte offset")
	fs.StringVar(&opts.output, "o", "", "Export textures and a glTF summary as outputName.*")
	fs.StringVar(&opts.configFile, "config", "", "Path to config.json file")
	fs.StringVar(&opts.layout, "layout", "", "Record layout: plain or padded (default: plain)")
	fs.StringVar(&opts.formats, "formats", "", "Texture formats, comma-separated (default: bmp)")
	fs.IntVar(&opts.scale, "scale", 0, "Integer enlargement of exported textures")

	for {
		if err := fs.Parse(args); err != nil {
			return opts, errUsage
		}
		if fs.NArg() == 0 {
			break
		}
		if opts.input != "" {
			fmt.Fprintf(stderr, "unexpected argument %q\n", fs.Arg(0))
			fs.Usage()
			return opts, errUsage
		}
		opts.input = fs.Arg(0)
		args = fs.Args()[1:]
	}

	if opts.input == "" {
		fs.Usage()
		return opts, errUsage
	}
	return opts, nil
}
