// Package topics provides a topic-based help system for Cobra CLI
// applications: markdown documents embedded in the binary become browsable
// help topics, rendered for the terminal.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one help document.
type Topic struct {
	Name    string
	Content string
	Format  string // file extension, e.g. ".md"
}

// Manager holds the topics found in a file system.
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Options configures a Manager.
type Options struct {
	// Renderer formats topic content for display.
	// Defaults to PlainRenderer.
	Renderer Renderer
}

// NewFromFS builds a Manager from every .md and .txt file in fsys,
// typically an embed.FS. The topic name is the file name without its
// extension.
func NewFromFS(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: opts.Renderer,
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if ext != ".md" && ext != ".txt" {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Content: string(content),
			Format:  ext,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}

	return m, nil
}

// Get retrieves a topic by name.
func (m *Manager) Get(name string) (*Topic, bool) {
	topic, exists := m.topics[name]
	return topic, exists
}

// List returns all topic names, sorted.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic for display through the manager's renderer.
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, topic.Format)
}

// Command builds a "docs [topic]" command that lists topics when called
// bare and renders the named topic otherwise.
func (m *Manager) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show documentation on robots.txt matching behavior",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return m.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				names := m.List()
				if len(names) == 0 {
					cmd.Println("No documentation topics available.")
					return nil
				}
				cmd.Println("Available topics:")
				for _, name := range names {
					cmd.Printf("  %s\n", name)
				}
				cmd.Printf("\nUse %q to read one.\n", cmd.CommandPath()+" <topic>")
				return nil
			}

			topic, ok := m.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown topic %q, try %q for the list", args[0], cmd.CommandPath())
			}
			cmd.Print(m.Render(topic))
			return nil
		},
	}
}
