// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package tasks

import (
	"context"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/fixturemocks/fixturemocks/internal/mocks"
	"github.com/fixturemocks/fixturemocks/pkg/types"
)

// GetMocksName is the name the descriptor task is registered under.
const GetMocksName = "getMocks"

// GetMocks resolves an options bag to the descriptors of a mocks folder.
type GetMocks struct {
	builder *mocks.Builder
}

// NewGetMocks creates the getMocks task over builder.
func NewGetMocks(builder *mocks.Builder) *GetMocks {
	return &GetMocks{builder: builder}
}

// Name returns "getMocks".
func (t *GetMocks) Name() string {
	return GetMocksName
}

// Run decodes args ({mocksFolder?, apiPath?, cache?}) and returns
// []types.Descriptor. Scan failures are not returned; only a malformed
// options bag is an error.
func (t *GetMocks) Run(_ context.Context, args map[string]any) (any, error) {
	result, err := t.Build(args)
	if err != nil {
		return nil, err
	}
	return result.Descriptors, nil
}

// Build decodes args and runs the builder, exposing the full result.
func (t *GetMocks) Build(args map[string]any) (mocks.Result, error) {
	opts, err := DecodeOptions(args)
	if err != nil {
		return mocks.Result{Descriptors: []types.Descriptor{}}, err
	}
	return t.builder.Build(opts), nil
}

// DecodeOptions converts an options bag into mocks.Options. Scalars are
// weakly typed so string values such as "false" from flags or env work.
func DecodeOptions(args map[string]any) (mocks.Options, error) {
	var opts mocks.Options

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return opts, fmt.Errorf("failed to create options decoder: %w", err)
	}

	if err := decoder.Decode(args); err != nil {
		return opts, fmt.Errorf("invalid getMocks options: %w", err)
	}
	return opts, nil
}

// Install registers the getMocks task on reg. The builder, and the cache it
// owns, live as long as the registry installation.
func Install(reg *Registry, builder *mocks.Builder) (*GetMocks, error) {
	task := NewGetMocks(builder)
	if err := reg.Register(task); err != nil {
		return nil, err
	}
	return task, nil
}
