package tape

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Gaurav-Gosain/take/internal/screen"
)

// Sink receives the events a script produces. terminal.Headless is the
// usual implementation.
type Sink interface {
	QueueKeys(keys ...screen.Key)
	QueueResize(width, height int)
}

// Player manages script playback
type Player struct {
	commands []Command
	index    int // Current command index
}

// NewPlayer creates a new script player from a list of commands
func NewPlayer(commands []Command) *Player {
	return &Player{commands: commands}
}

// Load parses script and returns a player for it. All parse errors are
// reported together.
func Load(script string) (*Player, error) {
	commands, errs := ParseFile(script)
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid script:\n  %s", strings.Join(errs, "\n  "))
	}
	return NewPlayer(commands), nil
}

// LoadFile reads and parses the script at path.
func LoadFile(path string) (*Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read script: %w", err)
	}
	return Load(string(data))
}

// NextCommand returns the next command without advancing the player
func (p *Player) NextCommand() *Command {
	if p.index >= len(p.commands) {
		return nil
	}
	return &p.commands[p.index]
}

// Advance moves to the next command
func (p *Player) Advance() {
	if p.index < len(p.commands) {
		p.index++
	}
}

// IsFinished returns true if all commands have been played
func (p *Player) IsFinished() bool {
	return p.index >= len(p.commands)
}

// Reset rewinds the player to the beginning
func (p *Player) Reset() {
	p.index = 0
}

// TotalCommands returns the total number of commands
func (p *Player) TotalCommands() int {
	return len(p.commands)
}

// Play queues every remaining command on sink, in order.
func (p *Player) Play(sink Sink) error {
	var errs []error
	for cmd := p.NextCommand(); cmd != nil; cmd = p.NextCommand() {
		if err := queue(sink, cmd); err != nil {
			errs = append(errs, err)
		}
		p.Advance()
	}
	return errors.Join(errs...)
}

func queue(sink Sink, cmd *Command) error {
	if cmd.Type == CommandType_Resize {
		width, height, err := cmd.Size()
		if err != nil {
			return err
		}
		for range max(cmd.Repeat, 1) {
			sink.QueueResize(width, height)
		}
		return nil
	}

	keys, err := cmd.Keys()
	if err != nil {
		return err
	}
	sink.QueueKeys(keys...)
	return nil
}

// String returns a debug string representation
func (p *Player) String() string {
	return fmt.Sprintf("Player{index=%d/%d, finished=%v}",
		p.index, len(p.commands), p.IsFinished())
}
