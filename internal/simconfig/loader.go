package simconfig

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the defaults YAML file and returns Config with raw bytes.
// KnownFields(true): 未知欄位視為錯字, 立即失敗
func Load(path string) (*Config, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, data, err
	}

	return &cfg, data, nil
}

// Default returns the built-in defaults used when no YAML file is given
func Default() *Config {
	return &Config{
		Meta: Meta{
			Name:     "etfcalc-defaults",
			Version:  "1.0",
			Timezone: "Asia/Taipei",
		},
		Defaults: Defaults{
			Ticker:        "0050",
			TriggerDays:   []int{6, 16, 26},
			Amount:        10000,
			LookbackYears: 3,
			Interval:      "1d",
		},
	}
}

// Hash generates a SHA256 hash from Config (canonical JSON)
// 注意: struct 欄位順序固定, 雜湊可重現
func Hash(cfg *Config) (string, error) {
	jsonBytes, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}
