// Copyright 2026 NumGo Array Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array_test

import (
	"errors"
	"testing"

	"github.com/numgo-ml/numgo/array"
	"github.com/numgo-ml/numgo/random"
)

// TestArrayAPI verifies the Array alias exposes the expected attributes.
func TestArrayAPI(t *testing.T) {
	a, err := array.Zeros(array.Shape{2, 3}, array.Float32)
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}

	if !a.Shape().Equal(array.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", a.Shape())
	}
	if a.NDim() != 2 {
		t.Errorf("NDim() = %d, want 2", a.NDim())
	}
	if a.Size() != 6 {
		t.Errorf("Size() = %d, want 6", a.Size())
	}
	if a.DType() != array.Float32 {
		t.Errorf("DType() = %v, want Float32", a.DType())
	}
	if a.ItemSize() != 4 {
		t.Errorf("ItemSize() = %d, want 4", a.ItemSize())
	}
	if a.NumBytes() != a.ItemSize()*a.Size() {
		t.Errorf("NumBytes() = %d, want %d", a.NumBytes(), a.ItemSize()*a.Size())
	}
}

// TestCreationAndIndexing exercises the creation and indexing surface
// through the facade.
func TestCreationAndIndexing(t *testing.T) {
	a, err := array.FromNested([]any{
		[]any{1, 2, 3},
		[]any{4, 5, 6.5},
	})
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}
	if a.DType() != array.Float64 {
		t.Errorf("inferred dtype = %v, want Float64", a.DType())
	}

	v, err := a.At(-1, -1)
	if err != nil {
		t.Fatalf("At(-1, -1) failed: %v", err)
	}
	if v != 6.5 {
		t.Errorf("At(-1, -1) = %v, want 6.5", v)
	}

	if _, err := a.At(2, 0); !errors.Is(err, array.ErrIndexOutOfRange) {
		t.Errorf("At(2, 0) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := a.At(0); !errors.Is(err, array.ErrRankMismatch) {
		t.Errorf("At(0) error = %v, want ErrRankMismatch", err)
	}
}

// TestSeededCreation verifies deterministic random creation through the
// facade with an explicit generator.
func TestSeededCreation(t *testing.T) {
	a, err := array.RandFrom(random.New(0), array.Shape{3, 3}, array.Float64)
	if err != nil {
		t.Fatalf("RandFrom failed: %v", err)
	}
	b, err := array.RandFrom(random.New(0), array.Shape{3, 3}, array.Float64)
	if err != nil {
		t.Fatalf("RandFrom failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("same seed must produce identical arrays")
	}
}

// TestRegistry verifies dtype resolution and promotion through the facade.
func TestRegistry(t *testing.T) {
	dt, err := array.ParseDType("int16")
	if err != nil {
		t.Fatalf("ParseDType failed: %v", err)
	}
	if dt != array.Int16 {
		t.Errorf("ParseDType(int16) = %v, want Int16", dt)
	}

	if _, err := array.ParseDType("decimal"); !errors.Is(err, array.ErrUnknownType) {
		t.Errorf("ParseDType(decimal) error = %v, want ErrUnknownType", err)
	}

	if got := array.Promote(array.Int8, array.Float64); got != array.Float64 {
		t.Errorf("Promote(Int8, Float64) = %v, want Float64", got)
	}
	if got := array.PromoteAll(array.Bool, array.Uint16, array.Int8); got != array.Uint16 {
		t.Errorf("PromoteAll = %v, want Uint16", got)
	}
}
