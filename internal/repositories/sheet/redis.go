package sheet

import (
	"context"
	stderrors "errors"
	"sort"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

// The id index lives outside the sheet: prefix so no sheet id can collide with it.
const (
	sheetKeyPrefix = "sheet:"
	sheetIndexKey  = "sheets:index"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed sheet repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func sheetKey(id string) string {
	return sheetKeyPrefix + id
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	result, err := r.client.Get(ctx, sheetKey(input.ID)).Bytes()
	if err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("sheet with ID %s not found", input.ID)
		}
		return nil, errors.PersistError(err, "failed to get sheet")
	}

	sheet, err := decode(input.ID, result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Sheet: sheet}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := encode(input.Sheet)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sheetKey(input.Sheet.ID), data, 0)
	pipe.SAdd(ctx, sheetIndexKey, input.Sheet.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.PersistError(err, "failed to save sheet")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, sheetIndexKey).Result()
	if err != nil {
		return nil, errors.PersistError(err, "failed to list sheets")
	}
	sort.Strings(ids)

	return &ListOutput{IDs: ids}, nil
}
