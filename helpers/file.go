package helpers

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var ErrReadYaml = errors.New("failed to read config file")

// envReference matches ${NAME}. A bare $ is left alone so bcrypt hashes
// survive expansion.
var envReference = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// LoadYamlFile decodes the file at path into conf, rejecting unknown keys.
// ${NAME} references are replaced by the environment before decoding. An
// empty path leaves conf untouched.
func LoadYamlFile[T any](path string, conf *T) error {
	if path == "" {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", ErrReadYaml, path, err)
	}

	expanded, err := expandEnv(content)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", ErrReadYaml, path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(conf); err != nil {
		return fmt.Errorf("%w '%s': %w", ErrReadYaml, path, err)
	}
	return nil
}

func expandEnv(content []byte) ([]byte, error) {
	var missing []string
	expanded := envReference.ReplaceAllFunc(content, func(ref []byte) []byte {
		name := string(envReference.FindSubmatch(ref)[1])
		value, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
			return ref
		}
		return []byte(value)
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("undefined environment variables %v", missing)
	}
	return expanded, nil
}
