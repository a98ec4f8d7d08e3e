package tools

import (
	"context"
	"fmt"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
)

// ExecuteFunc runs one tool invocation with model-supplied parameters.
// The returned error never escapes a dispatch; it is converted into an
// {error} payload for the conversation.
type ExecuteFunc func(ctx context.Context, params map[string]any) (any, error)

type Descriptor struct {
	Name        string
	Description string
	Schema      Schema
	Execute     ExecuteFunc
}

// Schema is the JSON Schema fragment describing a tool's parameters.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

type Property struct {
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Enum        []string  `json:"enum,omitempty"`
	Items       *Property `json:"items,omitempty"`
	Default     any       `json:"default,omitempty"`
}

// Registry is the static set of callable tools, built once by
// concatenating the per-domain descriptor slices. Lookup is by exact name,
// first match wins.
type Registry struct {
	descriptors []Descriptor
}

func NewRegistry(groups ...[]Descriptor) (*Registry, error) {
	var descriptors []Descriptor
	seen := make(map[string]struct{})

	for _, group := range groups {
		for _, descriptor := range group {
			if _, ok := seen[descriptor.Name]; ok {
				return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateToolName, descriptor.Name)
			}
			seen[descriptor.Name] = struct{}{}
			descriptors = append(descriptors, descriptor)
		}
	}

	return &Registry{descriptors: descriptors}, nil
}

// DefaultRegistry assembles the full tool set over the backend service
// groups.
func DefaultRegistry(
	email ports.EmailService,
	calendar ports.CalendarService,
	docs ports.DocsService,
	code ports.CodeService,
) (*Registry, error) {
	return NewRegistry(
		EmailTools(email),
		CalendarTools(calendar),
		DocsTools(docs),
		CodeTools(code),
	)
}

func (r *Registry) Lookup(name string) (Descriptor, bool) {
	for _, descriptor := range r.descriptors {
		if descriptor.Name == name {
			return descriptor, true
		}
	}

	return Descriptor{}, false
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.descriptors))
	for _, descriptor := range r.descriptors {
		names = append(names, descriptor.Name)
	}
	return names
}

// Specs describes every registered tool in the wire form advertised to
// the model.
func (r *Registry) Specs() []ports.ToolSpec {
	specs := make([]ports.ToolSpec, 0, len(r.descriptors))
	for _, descriptor := range r.descriptors {
		specs = append(specs, ports.ToolSpec{
			Name:        descriptor.Name,
			Description: descriptor.Description,
			Parameters:  descriptor.Schema,
		})
	}
	return specs
}

// Dispatch resolves a model-requested tool call and executes it. Unknown
// names and execution failures both come back as {error} payloads; a
// failing tool must not abort the surrounding chat turn.
func (r *Registry) Dispatch(ctx context.Context, name string, params map[string]any) any {
	descriptor, ok := r.Lookup(name)
	if !ok {
		return map[string]any{"error": fmt.Sprintf("Tool %s not found", name)}
	}

	result, err := descriptor.Execute(ctx, params)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	return result
}
