package main

import (
	"flag"
	"fmt"
	"os"

	hwpcat "github.com/gohwp/hwpdoc"
	"github.com/gohwp/hwpdoc/internal/render"
)

func main() {
	docInfo := flag.Bool("docinfo", false, "dump DocInfo arena counts instead of rendering text")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-docinfo] <hwp-file>\n", os.Args[0])
		os.Exit(1)
	}

	filename := flag.Arg(0)
	out := render.Stdout()

	doc, err := hwpcat.Open(filename)
	if err != nil {
		render.PrintError(os.Stderr, err)
		os.Exit(1)
	}

	if *docInfo {
		if err := render.RenderDocInfoTable(doc.DocInfo, out); err != nil {
			render.PrintError(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintln(out, doc.ExtractText())
}
