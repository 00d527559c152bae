package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

func writeJSON(w io.Writer, v any) error {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshalling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(d))
	return err
}

func writeJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating JSON output file: %w", err)
	}
	defer f.Close()
	return writeJSON(f, v)
}

func letters(vars []rune) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = string(v)
	}
	return out
}
