// Package version holds the app identity shown in logs and the about command.
package version

var (
	AppName     = "godris"
	AppVersion  = "0.1.0"
	Description = "An Eludris chat bot built on a typed command engine."
)
