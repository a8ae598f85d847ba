// Package main runs the wage survey analysis on Assig1.csv.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sartorproj/gowages/pipeline"
)

const dataFile = "Assig1.csv"

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("Wage Survey Analysis")
	fmt.Println(strings.Repeat("=", 80))

	config := pipeline.DefaultConfig()
	config.DataPath = findDataFile()
	fmt.Printf("\nData file: %s\n\n", config.DataPath)

	result, err := pipeline.Run(config, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println()
	for _, f := range result.Files {
		fmt.Printf("Saved %s\n", f)
	}
	fmt.Println(strings.Repeat("=", 80))
}

// findDataFile locates the data file next to the program, falling back to
// the working directory.
func findDataFile() string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if _, src, _, ok := runtime.Caller(0); ok {
		dirs = append(dirs, filepath.Dir(src))
	}
	dirs = append(dirs, "data", "../data", ".")

	for _, d := range dirs {
		p := filepath.Join(d, dataFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return dataFile
}
