package aliasgeneration

import (
	"fmt"
	"io"
	"sort"

	"github.com/AntonioJCosta/dalia/internal/core/domain/alias"
	"github.com/AntonioJCosta/dalia/internal/core/ports"
	"github.com/sirupsen/logrus"
)

type service struct {
	source ports.ConfigSource
	parser ports.AliasConfigParser
	log    *logrus.Logger
}

// NewService creates a new alias generation service.
// It panics if source or parser is nil. A nil log discards output.
func NewService(source ports.ConfigSource, parser ports.AliasConfigParser, log *logrus.Logger) ports.AliasService {
	if source == nil {
		panic("configSource cannot be nil")
	}
	if parser == nil {
		panic("aliasConfigParser cannot be nil")
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &service{source: source, parser: parser, log: log}
}

// GenerateAliases reads the configuration, parses it and returns the aliases sorted by name.
func (s *service) GenerateAliases() ([]alias.Alias, error) {
	content, err := s.source.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	s.log.WithField("config", s.source.Path()).Debug("Parsing configuration")

	aliasMap, err := s.parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.source.DisplayPath(), err)
	}

	aliases := make([]alias.Alias, 0, len(aliasMap))
	for name, path := range aliasMap {
		aliases = append(aliases, alias.Alias{Name: name, Path: path})
	}
	sort.Slice(aliases, func(i, j int) bool {
		return aliases[i].Name < aliases[j].Name
	})

	s.log.WithFields(logrus.Fields{
		"config":  s.source.Path(),
		"aliases": len(aliases),
	}).Debug("Generated aliases")

	return aliases, nil
}

// ConfigPath returns the configuration location for display purposes.
func (s *service) ConfigPath() string {
	return s.source.DisplayPath()
}
