package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout:
//
//	{
//	  "storage": {"data_dir": "...", "recent_file": "..."},
//	  "catalog": {"dsn": "...", "timeout": "5s"},
//	  "log":     {"file": "...", "level": "info"}
//	}
type StructuredJSONConfig struct {
	Storage struct {
		DataDir    string `json:"data_dir"`
		RecentFile string `json:"recent_file"`
	} `json:"storage,omitempty"`

	Catalog struct {
		DSN     string   `json:"dsn"`
		Timeout Duration `json:"timeout"`
	} `json:"catalog,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DataDir:    jsonCfg.Storage.DataDir,
			RecentFile: jsonCfg.Storage.RecentFile,
		},
		Catalog: Catalog{
			DSN:     jsonCfg.Catalog.DSN,
			Timeout: time.Duration(jsonCfg.Catalog.Timeout),
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
