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

package vm

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Console is the user I/O boundary for the IN and OUT opcodes. ReadLine
// displays prompt and returns one line of input without its trailing
// newline. WriteLine renders one value's textual form followed by a line
// break.
type Console interface {
	ReadLine(prompt string) (string, error)
	WriteLine(s string) error
}

// rwConsole wraps a plain reader/writer pair into a Console.
type rwConsole struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a Console reading lines from r and writing prompts
// and output to w.
func NewConsole(r io.Reader, w io.Writer) Console {
	return &rwConsole{in: bufio.NewReader(r), out: w}
}

func (c *rwConsole) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", errors.Wrap(err, "console prompt")
	}
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, "console read")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *rwConsole) WriteLine(s string) error {
	_, err := io.WriteString(c.out, s+"\n")
	return errors.Wrap(err, "console write")
}
