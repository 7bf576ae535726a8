package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"ngopi/config"
	"ngopi/internal/util"

	"github.com/pkg/errors"
)

func runImport(ctx context.Context, input string, chunk int) error {
	if chunk <= 0 {
		return errors.New("--chunk must be positive")
	}

	cafes, problems, err := readSeedFile(input)
	if err != nil {
		return err
	}
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", p.line, p.err)
		}

		return errors.Errorf("%d rows failed validation, fix the file before importing", len(problems))
	}
	if len(cafes) == 0 {
		return errors.New("seed file has no rows")
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	repo, err := newCafeStore(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	imported := 0
	for offset := 0; offset < len(cafes); offset += chunk {
		end := min(offset+chunk, len(cafes))
		if err := repo.BatchAddCafes(ctx, cafes[offset:end]); err != nil {
			return errors.Wrapf(err, "batch starting at row %d failed after %d imported", offset+2, imported)
		}
		imported += end - offset
		fmt.Printf("Imported %d/%d cafes\n", imported, len(cafes))
	}

	// The checksum lets a later run confirm it is re-importing the same file.
	checksum, err := util.CalculateFileChecksum(input)
	if err != nil {
		return err
	}
	info, err := os.Stat(input)
	if err != nil {
		return errors.Wrap(err, "failed to stat seed file")
	}

	fmt.Printf("Done: %d cafes from %s (%s, sha256 %s) in %s\n",
		imported, input, util.FormatBytes(info.Size()), checksum, util.FormatDuration(time.Since(start)))

	return nil
}
