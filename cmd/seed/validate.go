package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"ngopi/internal/domain/entity"

	"github.com/pkg/errors"
)

// rowProblem ties a parse or validation failure to its 1-based file line.
type rowProblem struct {
	line int
	err  error
}

// readSeedFile loads a seed CSV. Rows that fail to parse or validate are
// reported with their line numbers; good rows still come back so import can
// decide whether to proceed.
func readSeedFile(path string) ([]*entity.Cafe, []rowProblem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open seed file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read header row")
	}
	if len(header) != len(csvHeader) {
		return nil, nil, errors.Errorf("expected header %v, got %v", csvHeader, header)
	}

	var cafes []*entity.Cafe
	var problems []rowProblem

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			problems = append(problems, rowProblem{line: line, err: err})

			continue
		}

		cafe, err := parseRecord(record)
		if err != nil {
			problems = append(problems, rowProblem{line: line, err: err})

			continue
		}

		if err := cafe.Validate(); err != nil {
			problems = append(problems, rowProblem{line: line, err: err})

			continue
		}

		cafes = append(cafes, cafe)
	}

	return cafes, problems, nil
}

func runValidate(input string) error {
	cafes, problems, err := readSeedFile(input)
	if err != nil {
		return err
	}

	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "line %d: %v\n", p.line, p.err)
	}

	fmt.Printf("Checked %s: %d valid rows, %d invalid\n", input, len(cafes), len(problems))

	if len(problems) > 0 {
		return errors.Errorf("%d rows failed validation", len(problems))
	}

	return nil
}
