// Command lowzip lists and extracts entries from a ZIP archive, the same
// sort of small utility blast's cmd/blast builds around the blast package:
// a flag-parsed CLI over the library's public API, nothing more.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/svaarala/lowzip"
)

func main() {
	listFlag := flag.Bool("l", false, "list entries instead of extracting")
	archiveFile := flag.String("i", "", "input zip archive")
	entryName := flag.String("e", "", "entry name to extract")
	outputFile := flag.String("o", "", "output file (default: stdout)")
	globPattern := flag.String("glob", "", "list entries matching a glob pattern instead of all")
	flag.Parse()

	if *archiveFile == "" {
		flag.PrintDefaults()
		os.Exit(2)
	}

	f, err := os.Open(*archiveFile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Fatal(err)
	}

	d := lowzip.NewDecoder(lowzip.NewReaderAtSource(f, uint32(info.Size())), uint32(info.Size()))
	if err := d.InitArchive(); err != nil {
		log.Fatal(err)
	}

	switch {
	case *listFlag || *globPattern != "":
		pattern := *globPattern
		if pattern == "" {
			pattern = "**"
		}
		names, err := d.Glob(pattern)
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range names {
			fmt.Println(name)
		}

	case *entryName != "":
		r, err := d.Open(*entryName)
		if err != nil {
			log.Fatal(err)
		}
		defer r.Close()

		out := os.Stdout
		if *outputFile != "" {
			out, err = os.Create(*outputFile)
			if err != nil {
				log.Fatal(err)
			}
			defer out.Close()
		}
		if _, err := io.Copy(out, r); err != nil {
			log.Fatal(err)
		}

	default:
		flag.PrintDefaults()
		os.Exit(2)
	}
}
