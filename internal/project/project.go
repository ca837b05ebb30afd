// Package project supplies the read-only project directory.
// Projects are owned by an external service (or a plain JSON file);
// the tracker only fetches and caches them for name lookups.
package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ErrUnavailable indicates the project directory could not be reached
// or returned an unusable response. Callers should offer a retry.
var ErrUnavailable = errors.New("project directory unavailable")

// Project is a read-only reference entity supplied by the directory
type Project struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Client string `json:"client,omitempty"`
}

// Directory fetches the project list
type Directory interface {
	Projects(ctx context.Context) ([]Project, error)
}

// FileDirectory reads projects from a local JSON file.
type FileDirectory struct {
	Path string
}

// Projects reads and decodes the projects file.
func (d FileDirectory) Projects(ctx context.Context) ([]Project, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, d.Path, err)
	}
	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("%w: invalid projects file %s: %v", ErrUnavailable, d.Path, err)
	}
	return projects, nil
}

// Static is a fixed in-memory directory.
type Static []Project

// Projects returns the static list.
func (s Static) Projects(ctx context.Context) ([]Project, error) {
	return s, nil
}

// BuiltIn returns the default directory used when none is configured.
func BuiltIn() Static {
	return Static{
		{ID: 1, Name: "Web Design", Client: "Company A"},
		{ID: 2, Name: "App Development", Client: "Company B"},
		{ID: 3, Name: "Consulting", Client: "Company C"},
	}
}

// HTTPDirectory fetches projects from a remote directory service.
type HTTPDirectory struct {
	URL    string
	Client *http.Client
}

// NewHTTPDirectory creates an HTTPDirectory with a 10 second timeout.
func NewHTTPDirectory(url string) HTTPDirectory {
	return HTTPDirectory{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Projects performs a GET against the directory URL and decodes the
// JSON array. Any transport or decode failure wraps ErrUnavailable so
// the caller can surface a retryable error state.
func (d HTTPDirectory) Projects(ctx context.Context) ([]Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var projects []Project
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, fmt.Errorf("%w: invalid response: %v", ErrUnavailable, err)
	}
	return projects, nil
}

// Catalog caches one directory fetch per session and resolves
// project names for display.
type Catalog struct {
	dir      Directory
	projects []Project
	loaded   bool
}

// NewCatalog creates a Catalog backed by the given directory.
func NewCatalog(dir Directory) *Catalog {
	return &Catalog{dir: dir}
}

// Load fetches the project list if it has not been fetched yet.
// A failed fetch leaves the catalog unloaded so the next call retries.
func (c *Catalog) Load(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	projects, err := c.dir.Projects(ctx)
	if err != nil {
		return err
	}
	c.projects = projects
	c.loaded = true
	return nil
}

// Projects returns the cached project list (empty until Load succeeds).
func (c *Catalog) Projects() []Project {
	return c.projects
}

// Get returns the cached project with the given id.
func (c *Catalog) Get(id int) (Project, bool) {
	for _, p := range c.projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Name resolves a display name for a project id.
// Lookup order: cached directory name, the fallback recorded on the
// entry at creation time, then "Project {id}".
func (c *Catalog) Name(id int, fallback string) string {
	if p, ok := c.Get(id); ok {
		return p.Name
	}
	if fallback != "" {
		return fallback
	}
	return fmt.Sprintf("Project %d", id)
}
