// Package sheet persists whole sheet documents keyed by sheet id
package sheet

//go:generate mockgen -destination=mock/mock_repository.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet Repository

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Repository loads and saves sheets wholesale; there is no partial update
type Repository interface {
	// Get retrieves a sheet by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the sheet doesn't exist
	// Returns errors.Unavailable (reason PERSIST_ERROR) for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a sheet
	// Returns errors.InvalidArgument for a nil sheet or empty ID
	// Returns errors.Unavailable (reason PERSIST_ERROR) for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns the IDs of all stored sheets, sorted
	// Returns errors.Unavailable (reason PERSIST_ERROR) for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting a sheet
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a sheet
type GetOutput struct {
	Sheet *entities.Sheet
}

// SaveInput defines the input for saving a sheet
type SaveInput struct {
	Sheet *entities.Sheet
}

// SaveOutput defines the output for saving a sheet
type SaveOutput struct{}

// ListInput defines the input for listing sheets
type ListInput struct{}

// ListOutput defines the output for listing sheets
type ListOutput struct {
	IDs []string
}

const (
	errSheetNil     = "sheet cannot be nil"
	errSheetIDEmpty = "sheet ID cannot be empty"
)

func validateSave(input SaveInput) error {
	if input.Sheet == nil {
		return errors.InvalidArgument(errSheetNil)
	}
	if input.Sheet.ID == "" {
		return errors.InvalidArgument(errSheetIDEmpty)
	}
	return nil
}

func encode(sheet *entities.Sheet) ([]byte, error) {
	data, err := json.Marshal(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheet %s", sheet.ID)
	}
	return data, nil
}

func decode(id string, data []byte) (*entities.Sheet, error) {
	var sheet entities.Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal sheet %s", id)
	}
	if sheet.ID == "" {
		sheet.ID = id
	}
	return &sheet, nil
}
