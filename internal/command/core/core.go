// Package core ships the bot's built-in commands: ping, about and help.
package core

import "github.com/EnokiUN/godris/pkg/cmd"

// Ext returns the core command group.
func Ext() *cmd.Extension {
	ext := cmd.NewExtension("core", "Basic bot commands.")
	ext.MustAdd(pingCommand(), aboutCommand(), helpCommand())
	return ext
}
