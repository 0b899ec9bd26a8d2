package main

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/masomo-layout/core"
	"github.com/trezcool/masomo-layout/core/layout"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// resolve prints the layout built for req.
func (cli *commandLine) resolve(ctx context.Context, req layout.Request, format string) error {
	if format != formatJSON && format != formatYAML {
		return core.NewValidationError(nil, core.FieldError{Field: "format", Error: "format must be one of [json, yaml]"})
	}

	lay, err := cli.svc.Build(ctx, req)
	if err != nil {
		return err
	}
	return cli.print(lay, format)
}

func (cli *commandLine) print(v interface{}, format string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding json")
	}
	if format == formatYAML {
		if data, err = jsonToYAML(data); err != nil {
			return err
		}
	} else {
		data = append(data, '\n')
	}
	_, err = cli.out.Write(data)
	return err
}

// jsonToYAML re-encodes JSON as block style YAML, keeping the JSON field names and order.
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrap(err, "decoding json as yaml")
	}
	blockStyle(&node)

	out, err := yaml.Marshal(&node)
	return out, errors.Wrap(err, "encoding yaml")
}

func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, c := range n.Content {
		blockStyle(c)
	}
}
