package sections

import (
	"github.com/goliatone/go-sections/internal/catalog"
	"github.com/goliatone/go-sections/internal/di"
	"github.com/goliatone/go-sections/internal/section"
)

// Service exports the section service contract for consumers of the package.
type Service = section.Service

// Translator exports the translation orchestration contract.
type Translator = section.Translator

// Definition exports the section definition type.
type Definition = catalog.Definition

// Registry exports the definition registry.
type Registry = catalog.Registry

// Builtin section keys.
const (
	SectionHero       = catalog.SectionHero
	SectionAbout      = catalog.SectionAbout
	SectionContact    = catalog.SectionContact
	SectionEducation  = catalog.SectionEducation
	SectionExperience = catalog.SectionExperience
	SectionSocial     = catalog.SectionSocial
)

// Module represents the top level sections runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a sections module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Sections returns the configured section service.
func (m *Module) Sections() Service {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.SectionService()
}

// Catalog returns the definition registry backing the module.
func (m *Module) Catalog() *Registry {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Registry()
}

// Close releases resources owned by the module.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}
