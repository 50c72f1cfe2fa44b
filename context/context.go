package context

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultHostname = "api.telemetra.io"

type Context struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Hostname    string `json:"hostname"`
	TLS         bool   `json:"tls"`
	APIKey      string `json:"api_key"`
	Version     string `json:"version,omitempty"`
	Default     bool   `json:"-"`
}

// ServerURL returns the base URL for the platform based on the context's
// hostname and TLS setting.
func (ctx *Context) ServerURL() (string, error) {
	if ctx.Hostname == "" {
		return "", fmt.Errorf("hostname is not set")
	}

	scheme := "http"
	if ctx.TLS {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, ctx.Hostname), nil
}

func SaveContext(ctx Context) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".telemetra", "contexts")
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("could not create contexts directory: %w", err)
	}

	file := filepath.Join(dir, ctx.Name+".json")
	data, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal context: %w", err)
	}

	err = os.WriteFile(file, data, 0600)
	if err != nil {
		return fmt.Errorf("could not write context file: %w", err)
	}

	return nil
}

func LoadContext(name string) (*Context, error) {
	if name == "" {
		defaultName, err := getDefaultContextName()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				// No contexts configured yet. Fall back to the hosted
				// platform with the API key from the environment.
				return &Context{
					Name:        "default",
					Description: "default context",
					Hostname:    defaultHostname,
					TLS:         true,
					APIKey:      os.Getenv("TELEMETRA_API_KEY"),
				}, nil
			}
			return nil, err
		}
		name = defaultName
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not get user home directory: %w", err)
	}

	file := filepath.Join(home, ".telemetra", "contexts", name+".json")
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read context file: %w", err)
	}

	var ctx Context
	err = json.Unmarshal(data, &ctx)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal context: %w", err)
	}

	defaultName, err := getDefaultContextName()
	if err == nil && defaultName == ctx.Name {
		ctx.Default = true
	}

	return &ctx, nil
}

func ListContexts() ([]Context, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".telemetra", "contexts")
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read contexts directory: %w", err)
	}

	var contexts []Context
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			ctx, err := LoadContext(strings.TrimSuffix(file.Name(), ".json"))
			if err != nil {
				return nil, fmt.Errorf("could not load context %s: %w", file.Name(), err)
			}
			contexts = append(contexts, *ctx)
		}
	}

	return contexts, nil
}

func RemoveContext(name string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not get user home directory: %w", err)
	}

	file := filepath.Join(home, ".telemetra", "contexts", name+".json")
	err = os.Remove(file)
	if err != nil {
		return fmt.Errorf("could not remove context file: %w", err)
	}

	defaultName, err := getDefaultContextName()
	if err == nil && defaultName == name {
		err = removeDefaultContext()
		if err != nil {
			return fmt.Errorf("could not remove default context: %w", err)
		}
	}

	return nil
}

const defaultContextFile = ".default_context"

func SetDefaultContext(name string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".telemetra")
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("could not create .telemetra directory: %w", err)
	}

	file := filepath.Join(dir, defaultContextFile)
	err = os.WriteFile(file, []byte(name), 0644)
	if err != nil {
		return fmt.Errorf("could not write default context file: %w", err)
	}

	return nil
}

func getDefaultContextName() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}

	file := filepath.Join(home, ".telemetra", defaultContextFile)
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func removeDefaultContext() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not get user home directory: %w", err)
	}

	file := filepath.Join(home, ".telemetra", defaultContextFile)
	err = os.Remove(file)
	if err != nil {
		return fmt.Errorf("could not remove default context file: %w", err)
	}

	return nil
}
