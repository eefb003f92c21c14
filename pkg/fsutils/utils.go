package fsutils

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Decoder decodes
type Decoder interface {
	Decode(o interface{}) error
}

func ReadJSONFile(filePath string, required bool, o interface{}) (err error) {
	jsonDecoderFactory := func(r io.Reader) Decoder {
		return json.NewDecoder(r)
	}
	return ReadFile(filePath, required, o, jsonDecoderFactory)
}

func ReadYAMLFile(filePath string, required bool, o interface{}) (err error) {
	yamlDecoderFactory := func(r io.Reader) Decoder {
		return yaml.NewDecoder(r)
	}
	return ReadFile(filePath, required, o, yamlDecoderFactory)
}

// ReadFile decodes filePath into o. A missing file is not an error unless
// required, and an empty file leaves o untouched.
func ReadFile(filePath string, required bool, o interface{}, newDecoder func(r io.Reader) Decoder) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Warn().Err(err).Str("file", filePath).Msg("failed to close file")
		}
	}()
	decoder := newDecoder(file)
	if err = decoder.Decode(o); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return err
}

// WriteJSONFile replaces filePath with o encoded as indented JSON.
func WriteJSONFile(filePath string, o interface{}) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0o644)
}

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}
