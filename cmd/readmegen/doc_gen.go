//go:build ignore
// +build ignore

package main

import (
	"log"

	readmegen "github.com/mithrel/readmegen/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := readmegen.NewRootCmd()
	root.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(root, "./docs/markdown"); err != nil {
		log.Fatal(err)
	}

	header := &doc.GenManHeader{
		Title:   "READMEGEN",
		Section: "1",
	}
	if err := doc.GenManTree(root, header, "./docs/man"); err != nil {
		log.Fatal(err)
	}
}
