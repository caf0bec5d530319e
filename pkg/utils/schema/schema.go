// Package schema provides utilities for working with JSON schemas.
package schema

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"

	"github.com/yeisme/gitloc/pkg/classify"
	"github.com/yeisme/gitloc/pkg/configs"
	"github.com/yeisme/gitloc/pkg/models"
)

// Names 返回可生成的 schema 名称
func Names() []string {
	return []string{"config", "report", "table"}
}

// Generate 按名称生成 schema 并写入 out
func Generate(name string, out io.Writer) error {
	switch name {
	case "config":
		return GenConfigSchema(out)
	case "report":
		return GenReportSchema(out)
	case "table":
		return GenTableSchema(out)
	}
	return fmt.Errorf("unknown schema %q", name)
}

// GenConfigSchema generates the JSON schema for the entire application configuration and writes it to the provided writer.
func GenConfigSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "mapstructure",
	}
	return write(out, reflector.Reflect(configs.Config{}))
}

// GenReportSchema generates the JSON schema for a single category record of json/yaml/toml reports.
func GenReportSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	return write(out, reflector.Reflect(map[string]models.CountRecord{}))
}

// GenTableSchema generates the JSON schema for classification lookup table files.
func GenTableSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "yaml",
	}
	return write(out, reflector.Reflect(&classify.Table{}))
}

func write(out io.Writer, s *jsonschema.Schema) error {
	schemaJSON, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(schemaJSON))
	return err
}
