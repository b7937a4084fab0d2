package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// writeOutput writes s to path, or to stdout if path is empty.
// Written files are fsynced before close, the way a code generator
// whose output feeds a build should: a build that reads the file
// before its data has reached disk is a marginal but real failure
// this tool can trivially rule out.
func writeOutput(path, s string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, s)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, s); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := unix.Fsync(int(f.Fd())); err != nil {
		return fmt.Errorf("fsyncing %s: %w", path, err)
	}
	return f.Close()
}
