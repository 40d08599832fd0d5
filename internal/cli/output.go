package cli

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// writeOutput serializa o payload no formato escolhido em --output
func writeOutput(w io.Writer, format string, payload any) error {
	switch format {
	case OutputYAML:
		// yaml.v3 não lê tags json, então o payload passa antes por um mapa genérico
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		var generic any
		if err := yaml.Unmarshal(raw, &generic); err != nil {
			return err
		}

		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(generic); err != nil {
			return err
		}
		return encoder.Close()
	case OutputJSON, "":
		encoded, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(encoded))
		return err
	default:
		return fmt.Errorf("formato de saída inválido %q; use json|yaml", format)
	}
}
