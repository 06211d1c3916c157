package app

import (
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/nest/internal/engine/stack"
)

// Components contains the initialized application components needed by
// the CLI layer.
type Components struct {
	App       *App
	Owner     *stack.Owner
	Telemetry ports.Telemetry
	Logger    ports.Logger
}

// Close shuts down the long-lived components in reverse dependency
// order: the telemetry session first, then the stack owner.
func (c *Components) Close() {
	if err := c.Telemetry.Close(); err != nil {
		c.Logger.Error(err)
	}
	c.Owner.Close()
}
