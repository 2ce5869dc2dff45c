package main

import (
	"fmt"
	"io"
	"os"

	"github.com/llehouerou/xspf/internal/config"
	"github.com/llehouerou/xspf/internal/errmsg"
	"github.com/llehouerou/xspf/internal/export"
	"github.com/llehouerou/xspf/internal/render"
	"github.com/llehouerou/xspf/internal/xspf"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 || isHelp(args[0]) {
		printUsage()
		return
	}

	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "xspf: mode %q needs an input playlist\n\n", args[0])
		printUsage()
		os.Exit(2)
	}

	mode := args[0]
	inFile := args[1]
	var outArg string
	if len(args) > 2 {
		outArg = args[2]
	}

	if code := run(mode, inFile, outArg); code != 0 {
		os.Exit(code)
	}
}

func run(mode, inFile, outArg string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}

	pl, err := xspf.ParseFile(inFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpPlaylistParse, err))
		return 1
	}
	if pl.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "xspf: skipped %d track(s) with missing or unusable locations\n", pl.Skipped)
	}

	switch mode {
	case "list":
		return withOutput(outArg, func(w io.Writer) error {
			return render.List(w, pl)
		})

	case "json":
		return withOutput(outArg, func(w io.Writer) error {
			return render.JSON(w, pl)
		})

	case "summary":
		styled := styledOutput(cfg, outArg)
		return withOutput(outArg, func(w io.Writer) error {
			return render.Summary(w, pl, styled)
		})

	case "tags":
		styled := styledOutput(cfg, outArg)
		var failed int
		code := withOutput(outArg, func(w io.Writer) error {
			var err error
			failed, err = render.Tags(w, pl, styled)
			return err
		})
		if code == 0 && failed > 0 {
			return 1
		}
		return code

	case "copy", "convert":
		destDir := outArg
		if destDir == "" {
			destDir = cfg.OutputDir
		}
		if destDir == "" {
			fmt.Fprintf(os.Stderr, "xspf: %s needs an output directory (argument or output_dir in config)\n", mode)
			return 2
		}

		exporter := export.NewExporter(cfg.Convert.Bitrate)
		results := exporter.ExportPlaylist(pl, destDir, mode == "convert")

		styled := cfg.Color == "always" || (cfg.Color != "never" && isTTY(os.Stdout))
		if err := render.ExportReport(os.Stdout, results, styled); err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpExportReport, err))
			return 1
		}
		for _, r := range results {
			if r.Err != nil {
				return 1
			}
		}
		return 0

	default:
		fmt.Fprintf(os.Stderr, "xspf: unrecognised mode %q\n\n", mode)
		printUsage()
		return 2
	}
}

// withOutput runs emit against the named file, or stdout when outArg is
// empty.
func withOutput(outArg string, emit func(io.Writer) error) int {
	w := io.Writer(os.Stdout)
	if outArg != "" {
		f, err := os.Create(outArg)
		if err != nil {
			fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpOutputCreate, outArg, err))
			return 1
		}
		defer f.Close()
		w = f
	}

	if err := emit(w); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpOutputWrite, err))
		return 1
	}
	return 0
}

// styledOutput decides whether a mode writing to outArg gets colors:
// never when writing to a file, otherwise per config and TTY detection.
func styledOutput(cfg *config.Config, outArg string) bool {
	if outArg != "" {
		return false
	}
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTTY(os.Stdout)
	}
}

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func isHelp(s string) bool {
	return s == "help" || s == "-h" || s == "--help"
}

func printUsage() {
	fmt.Fprint(os.Stdout, `Usage: xspf <mode> <in.xspf> [<outfile>|<outdir>]

  modes:
    help     Print this text
    list     Write the paths of all tracks in the playlist to <outfile>
    json     Dump the extracted track info as JSON to <outfile>
    summary  Human-readable overview of the playlist
    tags     Read the embedded audio tags of every track file
    copy     Copy every track into <outdir> using ordered export names
    convert  Like copy, but convert flac tracks to mp3 (needs ffmpeg)

  <outfile> defaults to stdout. copy/convert fall back to output_dir
  from ~/.config/xspf/config.toml when <outdir> is omitted.
`)
}
