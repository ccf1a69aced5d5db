// Command contentlint validates a content tree the same way the server
// does at startup and reports every problem, plus one-way symmetric links.
//
// Usage:
//
//	contentlint [--dir path] [--strict] [--verbose]
//
// Without --dir the embedded seed library is checked. The exit status is 1
// when the content is invalid, or when --strict is set and lint findings
// exist, and 2 on usage errors.
package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/pflag"

	"github.com/phrazzld/medkb/internal/content"
	"github.com/phrazzld/medkb/internal/content/seed"
	"github.com/phrazzld/medkb/internal/library"
	"github.com/phrazzld/medkb/internal/lint"
	"github.com/phrazzld/medkb/internal/platform/logger"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("contentlint", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	dir := flags.String("dir", "", "content directory to check (default: embedded seed library)")
	strict := flags.Bool("strict", false, "treat lint findings as errors")
	verbose := flags.BoolP("verbose", "v", false, "log each collection as it loads")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	log := logger.New(stderr, level)

	var fsys fs.FS = seed.Library()
	source := "embedded seed library"
	if *dir != "" {
		info, err := os.Stat(*dir)
		if err != nil || !info.IsDir() {
			fmt.Fprintf(stderr, "Error: %s is not a directory\n", *dir)
			return 2
		}
		fsys = os.DirFS(*dir)
		source = *dir
	}

	lib, err := library.Load(ctx, content.NewLoader(fsys, log), log)
	if err != nil {
		fmt.Fprintf(stdout, "FAIL %s\n%v\n", source, err)
		return 1
	}

	findings := lint.OneWayEdges(lib.Graph())
	for _, f := range findings {
		fmt.Fprintf(stdout, "lint: %s\n", f)
	}

	records := 0
	for _, c := range lib.Collections() {
		records += c.Count()
	}
	fmt.Fprintf(stdout, "ok %s: %d collection(s), %d record(s), %d edge(s), %d lint finding(s)\n",
		source, len(lib.Names()), records, len(lib.Graph().Edges()), len(findings))

	if *strict && len(findings) > 0 {
		return 1
	}
	return 0
}
