package options

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the kmlcat settings. Defaults come from $KMLSTREAM_OPTS,
// explicit flags override them.
type Config struct {
	Output    string
	Outdir    string
	SQLFile   string
	Broker    string
	Gradient  string
	LineColor string
	Tokenizer bool
	StrictIDs bool
	Dms       bool
	Quiet     bool
	MaxDepth  int
	Verbose   bool
}

const EnvName = "KMLSTREAM_OPTS"

var Current Config

func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func splitEnv(defs string) []string {
	var parts []string
	for _, p := range strings.Split(defs, " ") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Parse fills a Config from the environment defaults string and the
// command line arguments, returning the remaining file arguments.
func Parse(fs *flag.FlagSet, env string, args []string) (Config, []string, error) {
	var c Config

	envflags := flag.NewFlagSet("$"+EnvName, flag.ContinueOnError)
	envflags.SetOutput(fs.Output())
	tok := envflags.Bool("tokenizer", false, "tokenizer")
	strict := envflags.Bool("strict-ids", false, "strict-ids")
	dms := envflags.Bool("dms", false, "dms")
	grad := envflags.String("gradient", "", "gradient")
	lcol := envflags.String("line-color", "", "line-color")
	outdir := envflags.String("outdir", "", "outdir")
	depth := envflags.Int("max-depth", 0, "max-depth")
	if err := envflags.Parse(splitEnv(env)); err != nil {
		return c, nil, err
	}
	c.Tokenizer = *tok
	c.StrictIDs = *strict
	c.Dms = *dms
	c.Gradient = *grad
	c.LineColor = *lcol
	c.Outdir = *outdir
	c.MaxDepth = *depth

	fs.StringVar(&c.Output, "o", "", "Output file (.kml or .kmz), '-' for stdout")
	fs.StringVar(&c.Outdir, "outdir", c.Outdir, "Output directory for generated KML")
	fs.StringVar(&c.SQLFile, "sql", "", "Export placemarks to SQLite database")
	fs.StringVar(&c.Broker, "broker", "", "Mqtt URI (mqtt://[user[:pass]@]broker[:port]/topic[?cafile=file]")
	fs.StringVar(&c.Gradient, "gradient", c.Gradient, "Add shared gradient styles [red,rdylgn,ylorrd]")
	fs.StringVar(&c.LineColor, "line-color", c.LineColor, "CSS colour applied to unstyled line strings")
	fs.BoolVar(&c.Tokenizer, "tokenizer", c.Tokenizer, "Use the xmltokenizer backend (vice encoding/xml)")
	fs.BoolVar(&c.StrictIDs, "strict-ids", c.StrictIDs, "Warn on duplicate object ids")
	fs.BoolVar(&c.Dms, "dms", c.Dms, "Show positions as DD:MM:SS.s (vice decimal degrees)")
	fs.BoolVar(&c.Quiet, "quiet", false, "Suppress the document summary")
	fs.BoolVar(&c.Verbose, "verbose", false, "Log every parse warning")
	fs.IntVar(&c.MaxDepth, "max-depth", c.MaxDepth, "Maximum element nesting (0 = reader default)")
	if err := fs.Parse(args); err != nil {
		return c, nil, err
	}

	if c.MaxDepth < 0 {
		return c, nil, fmt.Errorf("max-depth must not be negative: %d", c.MaxDepth)
	}
	// an explicit -o wins over an outdir inherited from the environment
	if isFlagSet(fs, "o") && !isFlagSet(fs, "outdir") {
		c.Outdir = ""
	}
	return c, fs.Args(), nil
}

func ParseCLI(gv func() string) []string {
	app := filepath.Base(os.Args[0])
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s [options] file...\n", app)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintln(os.Stderr, gv())
	}
	c, files, err := Parse(flag.CommandLine, os.Getenv(EnvName), os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	Current = c
	return files
}

// OutputName derives the output file name for input inp. The extension
// follows the requested output (-o) or defaults to .kmz; idx > 0 adds an
// index so several inputs do not overwrite each other.
func (c Config) OutputName(inp string, idx int) string {
	if c.Output == "-" {
		return c.Output
	}
	if c.Output != "" && idx == 0 {
		return c.Output
	}
	ext := ".kmz"
	if strings.EqualFold(filepath.Ext(c.Output), ".kml") {
		ext = ".kml"
	}
	base := c.Output
	if base == "" {
		base = inp
	}
	outfn := filepath.Base(base)
	if e := filepath.Ext(outfn); len(e) < len(outfn) {
		outfn = outfn[0 : len(outfn)-len(e)]
	}
	if idx > 0 {
		ext = fmt.Sprintf(".%d%s", idx, ext)
	}
	outfn = outfn + ext
	if c.Outdir != "" {
		outfn = filepath.Join(c.Outdir, outfn)
	} else if c.Output != "" {
		outfn = filepath.Join(filepath.Dir(c.Output), outfn)
	}
	return outfn
}

func Usage() {
	flag.Usage()
}
