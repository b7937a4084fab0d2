// Command dbuscodegen emits C marshalling code for bus-IPC type
// signatures, either one at a time (gen) or over a whole list at once
// (batch).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"slices"
	"strings"
	"sync"
	"syscall"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/slice"
	"github.com/kr/pretty"

	"github.com/dbuscodegen/dbuscodegen"
	"github.com/dbuscodegen/dbuscodegen/internal/cgen"
)

var globalArgs struct {
	OOM   string `flag:"oom,default=return -1;,Statement block run on generation failure"`
	Debug bool   `flag:"debug,Dump generated Vars with kr/pretty before emitting code"`
}

func main() {
	root := &command.C{
		Name:     "dbuscodegen",
		Usage:    "command args...",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:     "gen",
				Usage:    "gen signature func-name value-name",
				Help:     "Generate a single marshalling function for one type signature.",
				SetFlags: command.Flags(flax.MustBind, &genArgs),
				Run:      command.Adapt(runGen),
			},
			{
				Name:     "batch",
				Usage:    "batch signature...",
				Help:     "Generate marshalling functions for a list of type signatures into one file.",
				SetFlags: command.Flags(flax.MustBind, &batchArgs),
				Run:      runBatch,
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx)
	command.RunOrFail(env, os.Args[1:])
}

func config() dbuscodegen.Config {
	return dbuscodegen.Config{
		Target: dbuscodegen.CTarget{},
		OOM:    dbuscodegen.OOMBlock(globalArgs.OOM),
	}
}

var genArgs struct {
	Out string `flag:"out,Output file path (default stdout)"`
}

func runGen(env *command.Env, signature, funcName, valueName string) error {
	sig, err := dbuscodegen.ParseSignature(signature)
	if err != nil {
		return fmt.Errorf("parsing signature: %w", err)
	}

	if globalArgs.Debug {
		_, vars, err := dbuscodegen.Generate(config(), sig.Cursor(), valueName)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(vars))
	}

	code, err := dbuscodegen.Function(config(), sig, funcName, valueName)
	if err != nil {
		return fmt.Errorf("generating %s: %w", signature, err)
	}

	f := cgen.New(`"dbus/dbus.h"`)
	f.Function(signature, "")
	f.Raw(code)

	return writeOutput(genArgs.Out, f.String())
}

var batchArgs struct {
	Out     string `flag:"out,Output file path (default stdout)"`
	Filter  string `flag:"filter,Only generate signatures matching this regexp"`
	Workers int    `flag:"workers,default=4,Number of concurrent generation workers"`
}

func runBatch(env *command.Env) error {
	sigs := env.Args
	if batchArgs.Filter != "" {
		re, err := regexp.Compile(batchArgs.Filter)
		if err != nil {
			return fmt.Errorf("compiling filter: %w", err)
		}
		sigs = slices.Collect(slice.Select(sigs, re.MatchString))
	}
	if len(sigs) == 0 {
		return env.Usagef("batch requires at least one type signature")
	}

	results := make([]string, len(sigs))
	errs := make([]error, len(sigs))

	var wg sync.WaitGroup
	work := make(chan int)
	workers := batchArgs.Workers
	if workers < 1 {
		workers = 1
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results[i], errs[i] = generateOne(sigs[i], i)
			}
		}()
	}
	for i := range sigs {
		work <- i
	}
	close(work)
	wg.Wait()

	f := cgen.New(`"dbus/dbus.h"`)
	var failed []string
	for i, sig := range sigs {
		if errs[i] != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", sig, errs[i]))
			continue
		}
		f.Function(sig, "")
		f.Raw(results[i])
	}

	if err := writeOutput(batchArgs.Out, f.String()); err != nil {
		return err
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d signatures failed:\n%s", len(failed), len(sigs), strings.Join(failed, "\n"))
	}
	return nil
}

func generateOne(sig string, i int) (string, error) {
	s, err := dbuscodegen.ParseSignature(sig)
	if err != nil {
		return "", err
	}
	funcName := fmt.Sprintf("marshal_%d", i)
	return dbuscodegen.Function(config(), s, funcName, "value")
}
