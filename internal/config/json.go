package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		HashKey string `json:"hash_key"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		Backend        string   `json:"backend"`
		Endpoint       string   `json:"endpoint"`
		Bucket         string   `json:"bucket"`
		Region         string   `json:"region"`
		Prefix         string   `json:"prefix"`
		RootPath       string   `json:"root_path"`
		AccessKey      string   `json:"access_key"`
		SecretKey      string   `json:"secret_key"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Sync struct {
		PushTimeout  Duration `json:"push_timeout"`
		PullTimeout  Duration `json:"pull_timeout"`
		MergeTimeout Duration `json:"merge_timeout"`
		Interval     Duration `json:"interval"`
	} `json:"sync,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Crypto struct {
		Passphrase string `json:"passphrase"`
	} `json:"crypto,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
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
		App: App{
			HashKey: jsonCfg.App.HashKey,
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Remote: Remote{
			Backend:        jsonCfg.Remote.Backend,
			Endpoint:       jsonCfg.Remote.Endpoint,
			Bucket:         jsonCfg.Remote.Bucket,
			Region:         jsonCfg.Remote.Region,
			Prefix:         jsonCfg.Remote.Prefix,
			RootPath:       jsonCfg.Remote.RootPath,
			AccessKey:      jsonCfg.Remote.AccessKey,
			SecretKey:      jsonCfg.Remote.SecretKey,
			Token:          jsonCfg.Remote.Token,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Sync: Sync{
			PushTimeout:  time.Duration(jsonCfg.Sync.PushTimeout),
			PullTimeout:  time.Duration(jsonCfg.Sync.PullTimeout),
			MergeTimeout: time.Duration(jsonCfg.Sync.MergeTimeout),
			Interval:     time.Duration(jsonCfg.Sync.Interval),
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Crypto: Crypto{
			Passphrase: jsonCfg.Crypto.Passphrase,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		JSONFilePath: "",
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
