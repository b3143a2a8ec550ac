package config

// Config is the puzzle configuration loaded from configs/rope.yaml
type Config struct {
	Parts []PartConfig `yaml:"parts"`
}

// PartConfig describes one answer: a rope of Knots knots run over the whole input
type PartConfig struct {
	Name  string `yaml:"name"`
	Knots int    `yaml:"knots"`
}
