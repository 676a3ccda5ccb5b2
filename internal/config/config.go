package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bondsim/internal/bondgraph"
)

const (
	DefaultTheme   = "minimal"
	DefaultDataDir = ".bondsim"
)

// Config describes a bond graph model and what to do with it.
type Config struct {
	Name     string          `yaml:"name"`
	Elements []ElementConfig `yaml:"elements"`
	Bonds    []BondConfig    `yaml:"bonds"`
	Solve    []string        `yaml:"solve,omitempty"`
	Output   OutputConfig    `yaml:"output,omitempty"`
}

type ElementConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

type BondConfig struct {
	ID   string `yaml:"id,omitempty"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type OutputConfig struct {
	Markup bool   `yaml:"markup,omitempty"`
	Theme  string `yaml:"theme,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:   "untitled",
		Output: OutputConfig{Theme: DefaultTheme},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build assembles the described model.
func (c *Config) Build() (*bondgraph.Model, error) {
	m := bondgraph.NewModel(c.Name)
	for _, el := range c.Elements {
		if _, err := m.AddElement(bondgraph.Kind(el.Kind), el.Name); err != nil {
			return nil, fmt.Errorf("model %s: %w", c.Name, err)
		}
	}
	for _, b := range c.Bonds {
		if _, err := m.Connect(b.From, b.To, b.ID); err != nil {
			return nil, fmt.Errorf("model %s: %w", c.Name, err)
		}
	}
	return m, nil
}
