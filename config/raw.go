package config

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

var envExpr = regexp.MustCompile(`^__\${(\w+)}__$`)

// Raw is an unmarshalled YAML document. Accessors return the zero value for missing or unparsable keys.
type Raw map[string]interface{}

// ParseFromString Provide a YAML string and unmarshal it
func ParseFromString(content string) (Raw, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal([]byte(content), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func Parse(reader io.Reader) (Raw, error) {
	var out map[string]interface{}
	if err := yaml.NewDecoder(reader).Decode(&out); err != nil {
		if err == io.EOF {
			// empty file
			return Raw{}, nil
		}
		return nil, err
	}
	return out, nil
}

// Has returns true if key is present and not null
func (c Raw) Has(key string) bool {
	val, exists := c[key]
	return exists && val != nil
}

// String returns the value of key; a value of the form __${NAME}__ is replaced with the environment variable NAME
func (c Raw) String(key string) string {
	return interpolate(asString(c[key]))
}

func (c Raw) Bool(key string) bool {
	switch v := c[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(interpolate(v))
		if err == nil {
			return b
		}
	}
	return false
}

func (c Raw) Int(key string) int {
	switch v := c[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case string:
		i, err := strconv.Atoi(interpolate(v))
		if err == nil {
			return i
		}
	}
	return 0
}

func asString(val interface{}) string {
	if val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	if s, ok := val.(fmt.Stringer); ok && s != nil {
		return s.String()
	}
	return fmt.Sprintf("%v", val)
}

func interpolate(s string) string {
	m := envExpr.FindStringSubmatch(s)

	if len(m) <= 1 {
		return s
	}

	return os.Getenv(m[1])
}
