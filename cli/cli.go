package cli

import (
	"embed"
)

var (
	//go:embed cheats
	fs embed.FS
)

type Config struct {
	ContextName string
	FeedID      string
	StreamName  string
	TriggerID   string
	KeyToken    string
	AsCurl      bool
}
