package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

func ensureModPath() error {
	_, err := os.ReadFile("go.mod")
	if err != nil {
		return err
	}
	return nil
}

// findGoldenDirs returns the package directories whose testdata directory
// holds at least one .golden file. Only those tests understand -update.
func findGoldenDirs() ([]string, error) {
	var paths []string

	if err := ensureModPath(); err != nil {
		return paths, err
	}

	seen := make(map[string]bool)

	err := fs.WalkDir(os.DirFS("."), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), "_") || (d.Name() != "." && strings.HasPrefix(d.Name(), ".")) {
				return fs.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ".golden" {
			return nil
		}

		testdata := filepath.Dir(path)
		if filepath.Base(testdata) != "testdata" {
			return nil
		}

		pkg := filepath.Dir(testdata)
		if !seen[pkg] {
			seen[pkg] = true
			paths = append(paths, pkg)
		}

		return nil
	})
	if err != nil {
		return paths, err
	}

	return paths, nil
}

func updateTestData(dir, run string, verbose bool) error {
	args := []string{"test", "-timeout", "2m", "-count", "1"}
	if verbose {
		args = append(args, "-v")
	}
	if run != "" {
		args = append(args, "-run", run)
	}
	args = append(args, ".", "-update")

	cmd := exec.Command("go", args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func main() {
	var (
		hadError bool
		run      string
		verbose  bool
	)

	flag := flag.NewFlagSet("update-testdata", flag.ContinueOnError)

	flag.StringVar(&run, "run", "", "only update tests matching this regular expression")
	flag.BoolVar(&verbose, "v", false, "verbose test output")

	if err := flag.Parse(os.Args[1:]); err != nil {
		log.Fatalf("%+v", err)
	}

	paths, err := findGoldenDirs()
	if err != nil {
		log.Fatal(err)
	}

	if len(paths) == 0 {
		log.Println("no golden files found")
		return
	}

	for _, path := range paths {
		log.Printf("updating testdata for %s", path)

		if err := updateTestData(path, run, verbose); err != nil {
			hadError = true
			fmt.Println(err)
		}
	}

	if hadError {
		log.Println("some error(s) occurred in some of the tests")
		os.Exit(1)
	} else {
		log.Println("successfully updated testdata!")
	}
}
