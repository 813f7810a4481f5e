// Package iacguard implements the CLI commands.
package iacguard
