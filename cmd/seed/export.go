package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"ngopi/config"
	"ngopi/internal/domain/entity"

	"github.com/pkg/errors"
)

func runExport(ctx context.Context, output, city string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	repo, err := newCafeStore(cfg)
	if err != nil {
		return err
	}

	cafes, err := repo.GetCafes(ctx, entity.CafeFilter{City: city})
	if err != nil {
		return errors.Wrap(err, "failed to read cafes from the store")
	}

	file, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return errors.Wrap(err, "failed to write header row")
	}
	for _, cafe := range cafes {
		if err := writer.Write(formatRecord(cafe)); err != nil {
			return errors.Wrap(err, "failed to write cafe row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "failed to flush output file")
	}

	fmt.Printf("Exported %d cafes to %s\n", len(cafes), output)

	return nil
}
