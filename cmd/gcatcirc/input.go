package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/informatik-mannheim/gcatcirc/code"
)

// codeFile is the YAML shape accepted by --file. Either words or
// sequence plus tuple_length must be present.
type codeFile struct {
	ID          string   `yaml:"id"`
	Words       []string `yaml:"words"`
	Sequence    string   `yaml:"sequence"`
	TupleLength int      `yaml:"tuple_length"`
}

// loadCode builds the code named by the command line: a YAML file wins
// over --sequence, which wins over positional words.
func loadCode(args []string) (*code.Code, error) {
	switch {
	case flagFile != "":
		return codeFromFile(flagFile)
	case flagSequence != "":
		if flagTupleLength <= 0 {
			return nil, errors.New("gcatcirc: --sequence requires a positive --tuple-length")
		}

		return code.FromSequence(flagSequence, flagTupleLength, code.WithID(flagID))
	case len(args) > 0:
		return code.FromWords(args, code.WithID(flagID))
	}

	return nil, errors.New("gcatcirc: no code given, pass words, --sequence or --file")
}

// codeFromFile parses a YAML code description.
func codeFromFile(path string) (*code.Code, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gcatcirc: read %s: %w", path, err)
	}

	var in codeFile
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("gcatcirc: parse %s: %w", path, err)
	}

	id := in.ID
	if flagID != "" {
		id = flagID
	}

	switch {
	case len(in.Words) > 0:
		return code.FromWords(in.Words, code.WithID(id))
	case in.Sequence != "":
		if in.TupleLength <= 0 {
			return nil, fmt.Errorf("gcatcirc: %s: sequence requires a positive tuple_length", path)
		}

		return code.FromSequence(in.Sequence, in.TupleLength, code.WithID(id))
	}

	return nil, fmt.Errorf("gcatcirc: %s: neither words nor sequence given", path)
}
