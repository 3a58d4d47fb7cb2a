// Package source loads exported challenges and their solutions from disk.
//
// The Codewars API does not expose solution code, so challenges come from a
// file the user exports. Files ending in .json are read as JSON; everything
// else is read as YAML. Either way the document is a list of challenges,
// each with its solutions ordered newest first:
//
//	- level: 4kyu
//	  title: foo
//	  link: https://www.codewars.com/kata/foo
//	  solutions:
//	    - language: Python
//	      code: x=1
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"

	errs "katasync/pkg/errors"
	"katasync/pkg/models"
)

// Load reads and validates the challenges stored at path.
func Load(path string) ([]models.Challenge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrorTypeFilesystem, "read challenges", path, err)
	}

	challenges, err := Parse(data, Format(path))
	if err != nil {
		return nil, errs.Wrap(errs.ErrorTypeParsing, "load challenges", path, err)
	}
	return challenges, nil
}

// Format returns "json" or "yaml" for path.
func Format(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}

// Parse decodes data in the given format and validates every challenge.
func Parse(data []byte, format string) ([]models.Challenge, error) {
	var challenges []models.Challenge

	switch format {
	case "json":
		if err := json.Unmarshal(data, &challenges); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &challenges); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	}

	for i := range challenges {
		if err := validateChallenge(&challenges[i]); err != nil {
			return nil, fmt.Errorf("challenge %d (%q): %w", i, challenges[i].Title, err)
		}
	}

	if challenges == nil {
		challenges = []models.Challenge{}
	}
	return challenges, nil
}

func validateChallenge(c *models.Challenge) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.By(noSeparator)),
		validation.Field(&c.Title, validation.Required, validation.By(noSeparator)),
		validation.Field(&c.Link, is.URL),
	)
}

// noSeparator rejects values that would escape their directory when used
// as a path element.
func noSeparator(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, `/\`) || s == "." || s == ".." {
		return fmt.Errorf("must not contain path separators")
	}
	return nil
}
