package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/yookoala/realpath"

	"kmlstream/pkg/flsql"
	"kmlstream/pkg/kml"
	"kmlstream/pkg/kmlmqtt"
	"kmlstream/pkg/kmlread"
	"kmlstream/pkg/kmlwrite"
	"kmlstream/pkg/options"
	"kmlstream/pkg/styles"
	"kmlstream/pkg/summary"
	"kmlstream/pkg/xmlevent"
)

// progress and summaries move to stderr when the document goes to stdout
var info io.Writer = os.Stdout

var GitCommit = "local"
var GitTag = "0.0.0"

func GetVersion() string {
	return fmt.Sprintf("%s %s commit:%s", filepath.Base(os.Args[0]), GitTag, GitCommit)
}

func main() {
	files := options.ParseCLI(GetVersion)
	cfg := options.Current
	if len(files) == 0 {
		options.Usage()
		os.Exit(1)
	}

	if cfg.Output == "-" {
		info = os.Stderr
	}

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ropts := kmlread.DefaultOptions()
	ropts.Logger = log
	ropts.CheckIDs = cfg.StrictIDs
	if cfg.MaxDepth > 0 {
		ropts.MaxDepth = cfg.MaxDepth
	}
	if cfg.Tokenizer {
		ropts.Backend = xmlevent.BackendTokenizer
	}
	reader := kmlread.New(ropts)

	var lineColor *kml.Color
	if cfg.LineColor != "" {
		c, err := styles.ParseCSSColor(cfg.LineColor)
		if err != nil {
			log.Fatalf("kmlcat: %v", err)
		}
		lineColor = &c
	}

	var db *flsql.DB
	if cfg.SQLFile != "" {
		var err error
		if db, err = flsql.Open(cfg.SQLFile); err != nil {
			log.Fatalf("kmlcat: %+v", err)
		}
		defer db.Close()
	}

	var pub *kmlmqtt.Publisher
	if cfg.Broker != "" {
		var err error
		if pub, err = kmlmqtt.New(cfg.Broker, log); err != nil {
			log.Fatalf("kmlcat: %+v", err)
		}
		fmt.Fprintf(info, "%-8.8s : %s\n", "Topic", pub.Topic())
	}

	failed := false
	for i, fn := range files {
		idx := 0
		if len(files) > 1 {
			idx = i + 1
		}
		if err := process(reader, cfg, fn, idx, lineColor, db, pub, log); err != nil {
			log.WithField("file", fn).Errorf("%v", err)
			failed = true
		}
		fmt.Fprintln(info)
	}
	if failed {
		os.Exit(1)
	}
}

func process(reader *kmlread.Reader, cfg options.Config, fn string, idx int,
	lineColor *kml.Color, db *flsql.DB, pub *kmlmqtt.Publisher, log logrus.FieldLogger) error {
	fmt.Fprintf(info, "%-8.8s : %s\n", "File", fn)
	res, err := reader.ReadFile(fn)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "%s: %s\n", fn, w)
		}
	}

	if res.Kml != nil {
		if doc, ok := res.Kml.Feature.(*kml.Document); ok && cfg.Gradient != "" {
			n, err := styles.ApplyGradient(doc, cfg.Gradient, styles.NUM_GRAD)
			if err != nil {
				return err
			}
			fmt.Fprintf(info, "%-8.8s : %d placemarks\n", "Gradient", n)
		}
		if lineColor != nil && res.Kml.Feature != nil {
			r := styles.NewResolver(res.Styles)
			n := styles.ApplyLineColor(res.Kml.Feature, r, *lineColor)
			fmt.Fprintf(info, "%-8.8s : %d placemarks\n", "Colour", n)
		}
	}

	if !cfg.Quiet {
		var size int64
		if st, err := os.Stat(fn); err == nil {
			size = st.Size()
		}
		fmt.Fprint(info, summary.Summarize(res, size).Format(cfg.Dms))
	}

	if db != nil {
		id, err := db.WriteDocument(filepath.Base(fn), res)
		if err != nil {
			return err
		}
		fmt.Fprintf(info, "%-8.8s : %s #%d\n", "SQL", cfg.SQLFile, id)
	}

	if pub != nil && res.Kml != nil {
		n, err := pub.PublishDocument(res.Kml)
		if err != nil {
			return err
		}
		fmt.Fprintf(info, "%-8.8s : %d messages\n", "MQTT", n)
	}

	if res.Kml != nil && (cfg.Output != "" || cfg.Outdir != "") {
		outfn := cfg.OutputName(fn, idx)
		if err := writeOutput(outfn, res.Kml); err != nil {
			return err
		}
		show_output(outfn)
	} else if res.Kml == nil {
		log.WithField("file", fn).Warn("no kml root, nothing to write")
	}
	return nil
}

func writeOutput(outfn string, k *kml.Kml) error {
	if outfn == "-" {
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return kmlwrite.WriteIndent(os.Stdout, k, "", "  ")
		}
		return kmlwrite.Write(os.Stdout, k)
	}
	fh, err := os.Create(outfn)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(outfn), ".kmz") {
		err = kmlwrite.WriteKMZ(fh, k)
	} else {
		err = kmlwrite.WriteIndent(fh, k, "", "  ")
	}
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	return err
}

func show_output(outfn string) {
	if outfn == "-" {
		return
	}
	rp, err := realpath.Realpath(outfn)
	if err != nil || rp == "" {
		fmt.Fprintf(info, "%-8.8s : <%s> <%s>\n", "RealPath", rp, err)
		rp = outfn
	}
	fmt.Fprintf(info, "%-8.8s : %s\n", "Output", rp)
}
