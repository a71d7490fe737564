package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// maxCachedRenderers bounds the cache; every terminal resize produces a new width.
const maxCachedRenderers = 16

// cachedRenderer serializes use of one glamour renderer, which is not safe
// for concurrent Render calls.
type cachedRenderer struct {
	mu       sync.Mutex
	renderer *glamour.TermRenderer
}

func (c *cachedRenderer) render(content string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderer.Render(content)
}

// rendererCache keeps one renderer per distinct Options value.
type rendererCache struct {
	mu      sync.Mutex
	entries map[Options]*cachedRenderer
}

var renderers = &rendererCache{entries: make(map[Options]*cachedRenderer)}

// lookup returns the renderer for opts, building it on first use. When the
// cache is full it is emptied before the new entry is added.
func (c *rendererCache) lookup(opts Options) (*cachedRenderer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[opts]; ok {
		return entry, nil
	}

	r, err := createRenderer(opts)
	if err != nil {
		return nil, err
	}

	if len(c.entries) >= maxCachedRenderers {
		clear(c.entries)
	}
	entry := &cachedRenderer{renderer: r}
	c.entries[opts] = entry
	return entry, nil
}

// createRenderer creates a new TermRenderer with the specified options.
func createRenderer(opts Options) (*glamour.TermRenderer, error) {
	rendererOpts := []glamour.TermRendererOption{
		glamour.WithStandardStyle(opts.Style),
		glamour.WithWordWrap(opts.Width),
	}

	if opts.EnableEmoji {
		rendererOpts = append(rendererOpts, glamour.WithEmoji())
	}

	if opts.PreserveNewLines {
		rendererOpts = append(rendererOpts, glamour.WithPreservedNewLines())
	}

	return glamour.NewTermRenderer(rendererOpts...)
}

// ClearCache drops every cached renderer.
func ClearCache() {
	renderers.mu.Lock()
	clear(renderers.entries)
	renderers.mu.Unlock()
}

// CacheSize returns the number of cached renderers.
func CacheSize() int {
	renderers.mu.Lock()
	defer renderers.mu.Unlock()
	return len(renderers.entries)
}
