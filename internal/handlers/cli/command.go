package cli

import (
	"context"
	"errors"
)

// ErrUsage is returned when a command's arguments do not parse
var ErrUsage = errors.New("usage")

// CommandHandler defines the interface for console commands
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetUsage returns the one-line help text
	GetUsage() string

	// Handle runs the command and returns what to print
	Handle(ctx context.Context, args []string) (string, error)
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name  string
	Usage string
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetUsage returns the one-line help text
func (c *BaseCommand) GetUsage() string {
	return c.Usage
}

// funcCommand adapts a function to CommandHandler
type funcCommand struct {
	BaseCommand
	handle func(ctx context.Context, args []string) (string, error)
}

// Handle runs the wrapped function
func (c *funcCommand) Handle(ctx context.Context, args []string) (string, error) {
	return c.handle(ctx, args)
}

func newCommand(name, usage string, handle func(ctx context.Context, args []string) (string, error)) CommandHandler {
	return &funcCommand{
		BaseCommand: BaseCommand{Name: name, Usage: usage},
		handle:      handle,
	}
}
