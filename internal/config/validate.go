package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/frontend-cli.schema.json
var schemaBytes []byte

const schemaURL = "frontend-cli.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationIssue is a single schema violation in the config block.
type ValidationIssue struct {
	Path    string // instance location within the block, e.g. "/components"
	Message string
	Keyword string
}

// InvalidBlockError lists every schema violation found in the config block.
type InvalidBlockError struct {
	Issues []ValidationIssue
}

func (e *InvalidBlockError) Error() string {
	parts := make([]string, 0, len(e.Issues))

	for _, issue := range e.Issues {
		path := issue.Path
		if path == "" {
			path = "/"
		}

		parts = append(parts, fmt.Sprintf("%s%s: %s", BlockKey, path, issue.Message))
	}

	return fmt.Sprintf("%s: %s", ErrConfigInvalid, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match ErrConfigInvalid.
func (e *InvalidBlockError) Unwrap() error {
	return ErrConfigInvalid
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)

			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)

			return
		}

		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})

	return compiledSchema, compileErr
}

// ValidateBlock checks a decoded frontend-cli block against the embedded schema.
func ValidateBlock(block any) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	// Round-trip through JSON so numbers reach the validator as json.Number.
	data, err := json.Marshal(block)
	if err != nil {
		return fmt.Errorf("encoding %s config: %w", BlockKey, err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("preparing %s config for validation: %w", BlockKey, err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validating %s config: %w", BlockKey, err)
	}

	return &InvalidBlockError{Issues: extractIssues(ve)}
}

func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}

	return issues
}

// collectIssues walks the error tree and keeps the leaf errors.
func collectIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}

		return
	}

	if ve.ErrorKind == nil {
		return
	}

	keyword := ""
	if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
		keyword = kw[len(kw)-1]
	}

	if keyword == "" || keyword == "$ref" || keyword == "allOf" {
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	*issues = append(*issues, ValidationIssue{
		Path:    path,
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	})
}
