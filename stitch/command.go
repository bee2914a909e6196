// seehuhn.de/go/gridfill - grid-fill embroidery stitch generation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package stitch

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// Command is an embroidery machine command code.
//
// The numbering follows the pyembroidery convention, so that stitch strings
// produced here can be exchanged with other embroidery tools.
type Command int

// Embroidery commands.
const (
	CmdNoCommand     Command = -1
	CmdStitch        Command = 0
	CmdJump          Command = 1
	CmdTrim          Command = 2
	CmdStop          Command = 3
	CmdEnd           Command = 4
	CmdColorChange   Command = 5
	CmdSequinMode    Command = 6
	CmdSequinEject   Command = 7
	CmdNeedleSet     Command = 9
	CmdSlow          Command = 0xB
	CmdFast          Command = 0xC
	CmdStitchBreak   Command = 0xE0
	CmdSequenceBreak Command = 0xE1
	CmdColorBreak    Command = 0xE2
	CmdTieOn         Command = 0xE4
	CmdTieOff        Command = 0xE5
	CmdFrameEject    Command = 0xE9
)

var commandNames = map[Command]string{
	CmdNoCommand:     "NO_COMMAND",
	CmdStitch:        "STITCH",
	CmdJump:          "JUMP",
	CmdTrim:          "TRIM",
	CmdStop:          "STOP",
	CmdEnd:           "END",
	CmdColorChange:   "COLOR_CHANGE",
	CmdSequinMode:    "SEQUIN_MODE",
	CmdSequinEject:   "SEQUIN_EJECT",
	CmdNeedleSet:     "NEEDLE_SET",
	CmdSlow:          "SLOW",
	CmdFast:          "FAST",
	CmdStitchBreak:   "STITCH_BREAK",
	CmdSequenceBreak: "SEQUENCE_BREAK",
	CmdColorBreak:    "COLOR_BREAK",
	CmdTieOn:         "TIE_ON",
	CmdTieOff:        "TIE_OFF",
	CmdFrameEject:    "FRAME_EJECT",
}

var commandCodes = func() map[string]Command {
	res := make(map[string]Command, len(commandNames))
	for cmd, name := range commandNames {
		res[name] = cmd
	}
	return res
}()

// ErrUnknownCommand is returned when a command name cannot be resolved.
var ErrUnknownCommand = errors.New("unknown embroidery command")

// String returns the common name of the command, e.g. "STITCH".
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("COMMAND(%d)", int(c))
}

// Known reports whether c is one of the command codes defined above.
func (c Command) Known() bool {
	_, ok := commandNames[c]
	return ok
}

// ParseCommand converts a command name back into its code.
// Names are matched case-insensitively.
func ParseCommand(name string) (Command, error) {
	cmd, ok := commandCodes[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return CmdNoCommand, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return cmd, nil
}

// Names returns a copy of the code to name dictionary.
func Names() map[Command]string {
	return maps.Clone(commandNames)
}
