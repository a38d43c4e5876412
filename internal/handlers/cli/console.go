// Package cli exposes the session engine as line-oriented text commands.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/oraculo/internal/services/deck"
	"github.com/KirkDiggler/oraculo/internal/services/game"
	"github.com/KirkDiggler/oraculo/internal/services/messaging"
	"github.com/KirkDiggler/oraculo/internal/services/roster"
)

// Console reads commands from In and writes their results to Out
type Console struct {
	mu       sync.Mutex
	commands map[string]CommandHandler

	roster roster.Service
	decks  map[string]*deck.Engine
	picker *deck.Picker
	game   game.Service
	oracle messaging.Service

	in  io.Reader
	out io.Writer
}

// Config holds the configuration for the console
type Config struct {
	Roster roster.Service
	Decks  []*deck.Engine
	Picker *deck.Picker
	Game   game.Service

	// Messaging voices reveals, picks and the winner
	Messaging messaging.Service

	In  io.Reader
	Out io.Writer
}

// New creates a console with every command registered
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Roster == nil {
		return nil, errors.New("roster service cannot be nil")
	}
	if cfg.Picker == nil {
		return nil, errors.New("picker cannot be nil")
	}
	if cfg.Game == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}

	c := &Console{
		commands: make(map[string]CommandHandler),
		roster:   cfg.Roster,
		decks:    make(map[string]*deck.Engine, len(cfg.Decks)),
		picker:   cfg.Picker,
		game:     cfg.Game,
		oracle:   cfg.Messaging,
		in:       cfg.In,
		out:      cfg.Out,
	}
	for _, d := range cfg.Decks {
		c.decks[d.DeckID()] = d
	}

	for _, cmd := range c.builtinCommands() {
		if err := c.RegisterCommand(cmd); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RegisterCommand adds a command, refusing duplicate names
func (c *Console) RegisterCommand(cmd CommandHandler) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.commands[cmd.GetName()]; ok {
		return fmt.Errorf("command %s already registered", cmd.GetName())
	}
	c.commands[cmd.GetName()] = cmd
	return nil
}

// Execute runs one command line and returns its output
func (c *Console) Execute(ctx context.Context, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	name := strings.ToLower(fields[0])
	if name == "help" {
		return c.help(), nil
	}

	c.mu.Lock()
	cmd, ok := c.commands[name]
	c.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("unknown command %q, try help", name)
	}

	output, err := cmd.Handle(ctx, fields[1:])
	if errors.Is(err, ErrUsage) {
		return "", fmt.Errorf("usage: %s", cmd.GetUsage())
	}
	return output, err
}

// Run executes lines from the input until it ends, the context is cancelled
// or the exit command is read
func (c *Console) Run(ctx context.Context) error {
	if c.in == nil {
		return errors.New("input cannot be nil")
	}

	scanner := bufio.NewScanner(c.in)
	fmt.Fprint(c.out, "> ")
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "exit" {
			break
		}

		output, err := c.Execute(ctx, line)
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		} else if output != "" {
			fmt.Fprintln(c.out, output)
		}
		fmt.Fprint(c.out, "> ")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	log.Println("Console closed")
	return nil
}

// Stop cancels pending deck cooldowns and reveal locks
func (c *Console) Stop() {
	for _, d := range c.decks {
		d.Stop()
	}
	c.roster.Reset()
}

func (c *Console) help() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, "  %s\n", c.commands[name].GetUsage())
	}
	sb.WriteString("  help\n  exit")
	return sb.String()
}
