package templates

import (
	"encoding/json"
	"errors"
	"path"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ValidateContent checks that rendered text is well-formed for the format
// implied by the template path's extension. Formats without a parser are
// accepted as-is.
func ValidateContent(templatePath, content string) error {
	var err error
	switch path.Ext(templatePath) {
	case ".toml":
		var v map[string]any
		err = toml.Unmarshal([]byte(content), &v)
	case ".yml", ".yaml":
		var v any
		err = yaml.Unmarshal([]byte(content), &v)
	case ".json":
		if !json.Valid([]byte(content)) {
			err = errors.New("invalid JSON")
		}
	default:
		return nil
	}

	if err != nil {
		return &TemplateError{Path: templatePath, Reason: "rendered content is malformed", Err: err}
	}
	return nil
}
