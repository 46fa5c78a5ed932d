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
	"fmt"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

// linerConsole implements vm.Console on top of a line editor, so IN
// prompts get editing and history when stdin is a terminal.
type linerConsole struct {
	state *liner.State
}

func newLinerConsole() *linerConsole {
	s := liner.NewLiner()
	s.SetCtrlCAborts(true)
	return &linerConsole{state: s}
}

func (c *linerConsole) ReadLine(prompt string) (string, error) {
	line, err := c.state.Prompt(prompt)
	if err != nil {
		return "", errors.Wrap(err, "console read")
	}
	if line != "" {
		c.state.AppendHistory(line)
	}
	return line, nil
}

func (c *linerConsole) WriteLine(s string) error {
	_, err := fmt.Println(s)
	return errors.Wrap(err, "console write")
}

// Close restores the terminal state. Must run before the process exits.
func (c *linerConsole) Close() error {
	return c.state.Close()
}
