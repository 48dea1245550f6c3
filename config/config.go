package config

import (
	"errors"
	"github.com/allape/spritecut/envar"
	"github.com/allape/spritecut/logger"
	"github.com/pelletier/go-toml/v2"
	"io/fs"
	"os"
)

var log = logger.New("[config]")

const DefaultConfigPath = "spritecut.toml"

type Compression string

const (
	CompressionDefault Compression = "default"
	CompressionNone    Compression = "none"
	CompressionSpeed   Compression = "speed"
	CompressionBest    Compression = "best"
)

type Sprite struct {
	Src    string `toml:"src"`
	Prefix string `toml:"prefix"`
}

type Output struct {
	Dir         string      `toml:"dir"`
	Concurrent  bool        `toml:"concurrent"`
	Compression Compression `toml:"compression"`
}

type Preview struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`

	// Speed
	// Seconds one full animation cycle (all five frames of a row) takes.
	// Example:
	//  0.8 makes every frame of the preview GIF last 160ms.
	Speed float64 `toml:"speed"`
	// Scale: nearest-neighbour upscale factor of the preview, 1 for none
	Scale int `toml:"scale"`
}

type Config struct {
	Sprite  Sprite  `toml:"sprite"`
	Output  Output  `toml:"output"`
	Preview Preview `toml:"preview"`
}

func Default() Config {
	return Config{
		Sprite: Sprite{
			Src:    "fox-sprite.png",
			Prefix: "fox",
		},
		Output: Output{
			Dir:         "fox_frames",
			Concurrent:  false,
			Compression: CompressionDefault,
		},
		Preview: Preview{
			Enabled: false,
			Dir:     "fox_preview",
			Speed:   0.8,
			Scale:   1,
		},
	}
}

// Load reads configFile over the defaults.
// A missing file is only an error when required is true.
func Load(configFile string, required bool) (Config, error) {
	config := Default()

	configData, err := os.ReadFile(configFile)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			log.Println("config file not found, use defaults:", configFile)
			return config, nil
		}
		return config, err
	}

	err = toml.Unmarshal(configData, &config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// ApplyEnv overrides the source and output paths from the environment
func (c *Config) ApplyEnv() {
	c.Sprite.Src = envar.Getenv(envar.SpritecutSrc, c.Sprite.Src)
	c.Output.Dir = envar.Getenv(envar.SpritecutOutput, c.Output.Dir)
}

// GetConfig
// uses the first arg as the config file path, falls back to DefaultConfigPath
func GetConfig(args []string) (Config, error) {
	configFile := DefaultConfigPath
	required := false
	if len(args) > 0 {
		configFile = args[0]
		required = true
	}

	log.Println("reading config file:", configFile)

	config, err := Load(configFile, required)
	if err != nil {
		return config, err
	}

	config.ApplyEnv()

	log.Println("use config:", config)

	return config, nil
}
