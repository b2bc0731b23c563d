package config

import "github.com/gokulr94/gcp-performance-analyzer/pkg/koanf"

type AnalyzerConfig struct {
	Postgres koanf.Postgres   `json:"postgres,omitempty" koanf:"postgres"`
	Http     koanf.HttpServer `json:"http,omitempty" koanf:"http"`
	OpenAI   koanf.OpenAI     `json:"openai,omitempty" koanf:"openai"`
}
