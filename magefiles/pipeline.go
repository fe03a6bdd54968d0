package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Summarize builds the CLI and summarizes one gene in one paper,
// recording the result: mage summarize PF3D7_0731500 25452349
func Summarize(geneID, pubmedID string) error {
	mg.Deps(Init, Build)
	return sh.RunV(filepath.Join(binDir, binName), "summarize", geneID, pubmedID, "--store")
}

// Batch builds the CLI and runs every pair listed in file,
// recording the results: mage batch pairs.txt
func Batch(file string) error {
	mg.Deps(Init, Build)
	return sh.RunV(filepath.Join(binDir, binName), "batch", file, "--store")
}

// Prompts prints the prompt templates in effect.
func Prompts() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "prompts")
}
