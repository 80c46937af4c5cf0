package store

import (
	"context"
	"encoding/json"
	"errors"
)

// Repository is a typed view over one KV key, with a JSON codec. A
// missing key reads back as the zero value of T rather than an error,
// since every entity here treats "never stored" as "empty".
type Repository[T any] struct {
	kv  KV
	key string
}

func NewRepository[T any](kv KV, key string) *Repository[T] {
	return &Repository[T]{kv: kv, key: key}
}

func (r *Repository[T]) Get(ctx context.Context) (T, error) {
	var v T
	raw, err := r.kv.Get(ctx, r.key)
	if errors.Is(err, ErrNotFound) {
		return v, nil
	}
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, err
	}
	return v, nil
}

func (r *Repository[T]) Put(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, r.key, raw)
}

func (r *Repository[T]) Delete(ctx context.Context) error {
	return r.kv.Delete(ctx, r.key)
}
