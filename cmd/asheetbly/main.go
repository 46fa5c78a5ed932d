// This file is part of asheetbly - https://github.com/MineRobber9000/asheetbly
//
// Copyright 2025 MineRobber9000
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/MineRobber9000/asheetbly/vm"
)

var (
	startAddr = flag.String("start", "A1", "start execution at `address`")
	seed      = flag.Int64("seed", 0, "seed for RAND and RANDINT (0 seeds from the clock)")
	traceRun  = flag.Bool("trace", false, "log every instruction to stderr")
	debug     = flag.Bool("debug", false, "dump machine state when a run fails")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] program.csv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	os.Exit(run(flag.Arg(0)))
}

func run(path string) int {
	level := zerolog.InfoLevel
	if *traceRun {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	opts := []vm.Option{vm.StartA1(*startAddr)}
	if *seed != 0 {
		opts = append(opts, vm.RandSource(rand.NewSource(*seed)))
	}
	if *traceRun {
		opts = append(opts, vm.Trace(func(pc vm.Address, op vm.Opcode) {
			log.Debug().Stringer("pc", pc).Stringer("op", op).Msg("exec")
		}))
	}

	// interactive sessions get line editing and history for IN prompts
	if isatty.IsTerminal(os.Stdin.Fd()) {
		con := newLinerConsole()
		defer con.Close()
		opts = append(opts, vm.WithConsole(con))
	} else {
		opts = append(opts, vm.WithConsole(vm.NewConsole(os.Stdin, os.Stdout)))
	}

	i, err := vm.RunFile(path, opts...)
	if err == nil {
		return 0
	}
	if *debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		dump(os.Stderr, i)
	} else {
		log.Error().Err(err).Msg("run failed")
	}
	return 1
}
