package usecase

import (
	"context"
	"testing"

	"catalog-api/internal/catalog"
	"catalog-api/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func floatPtr(f float64) *float64 { return &f }

func TestCreate(t *testing.T) {
	uc := New(&mockLogger{})
	ctx := context.Background()

	t.Run("tax present and non-zero adds price_with_tax", func(t *testing.T) {
		out, err := uc.Create(ctx, catalog.CreateItemInput{
			Item: model.Item{Name: "Foo", Price: 42.0, Tax: floatPtr(3.2)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.PriceWithTax == nil {
			t.Fatal("expected price_with_tax to be set")
		}
		if *out.PriceWithTax != 45.2 {
			t.Errorf("expected 45.2, got %v", *out.PriceWithTax)
		}
	})

	t.Run("tax absent omits price_with_tax", func(t *testing.T) {
		out, err := uc.Create(ctx, catalog.CreateItemInput{
			Item: model.Item{Name: "Foo", Price: 42.0},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.PriceWithTax != nil {
			t.Errorf("expected nil price_with_tax, got %v", *out.PriceWithTax)
		}
	})

	t.Run("tax zero omits price_with_tax", func(t *testing.T) {
		out, err := uc.Create(ctx, catalog.CreateItemInput{
			Item: model.Item{Name: "Foo", Price: 42.0, Tax: floatPtr(0)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.PriceWithTax != nil {
			t.Errorf("expected nil price_with_tax, got %v", *out.PriceWithTax)
		}
	})

	t.Run("item is echoed unchanged", func(t *testing.T) {
		desc := "a nice item"
		out, err := uc.Create(ctx, catalog.CreateItemInput{
			Item: model.Item{Name: "Bar", Description: &desc, Price: 10, Tax: floatPtr(1.5)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.Name != "Bar" || out.Item.Description == nil || *out.Item.Description != desc {
			t.Errorf("item not echoed: %+v", out.Item)
		}
	})
}
