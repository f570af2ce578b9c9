package script

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlScript is the document layout of a YAML script:
//
//	ops:
//	- op: create
//	  value: 10
//	- op: insert
//	  values: [5, 15]
type yamlScript struct {
	Ops []Op `yaml:"ops"`
}

// Load reads a script file. Files with a .yaml or .yml extension are parsed as
// YAML, anything else as the line format.
func Load(path string) ([]Op, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(content)
	}

	return ParseLines(bytes.NewReader(content))
}

// ParseLines parses the line format: one op per line, the op name followed by
// its integer values, e.g. "insert 5 15 3". Text after '#' is a comment.
func ParseLines(r io.Reader) ([]Op, error) {
	var ops []Op

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		op, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}

		ops = append(ops, op)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to read script")
	}

	return ops, nil
}

func parseLine(line string, lineNo int) (Op, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return Op{}, errors.Wrapf(err, "line %d: unable to split %q", lineNo, line)
	}

	if len(words) == 0 {
		return Op{}, errors.Wrapf(ErrBadArgument, "line %d: missing op in %q", lineNo, line)
	}

	op := Op{Type: OpType(strings.ToLower(words[0])), Line: lineNo}
	for _, w := range words[1:] {
		// "nil" is accepted for readability: expect-root nil
		if op.Type == OpExpectRoot && (w == "nil" || w == "empty") {
			continue
		}

		v, err := strconv.Atoi(w)
		if err != nil {
			return Op{}, errors.Wrapf(ErrBadArgument, "line %d: %q is not an integer", lineNo, w)
		}

		op.Values = append(op.Values, v)
	}

	if err := op.Validate(); err != nil {
		return Op{}, err
	}

	return op, nil
}

// ParseYAML parses a YAML script document.
func ParseYAML(data []byte) ([]Op, error) {
	var doc yamlScript
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "unable to parse yaml script")
	}

	for i := range doc.Ops {
		doc.Ops[i].Type = OpType(strings.ToLower(string(doc.Ops[i].Type)))
		if err := doc.Ops[i].Validate(); err != nil {
			return nil, errors.Wrapf(err, "op #%d", i+1)
		}
	}

	return doc.Ops, nil
}
