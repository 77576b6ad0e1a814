package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tHeiieh/inventory-api/internal/transport"
)

func TestInventoryService_CreateAndGetRoundTrip(t *testing.T) {
	svc := newInventoryService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		PName:       strPtr("Widget"),
		Description: strPtr("a widget"),
		Price:       9.99,
		Stock:       float64(5),
	})
	require.NoError(t, err)
	require.NotZero(t, created.PID)

	got, err := svc.GetProduct(ctx, created.PID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.PName)
	assert.Equal(t, "a widget", got.Description)
	assert.Equal(t, 9.99, got.Price)
	assert.Equal(t, 5, got.Stock)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestInventoryService_CreateProduct_NumericStringsAccepted(t *testing.T) {
	svc := newInventoryService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		PName: strPtr("Widget"),
		Price: "9.99",
		Stock: "5",
	})
	require.NoError(t, err)

	got, err := svc.GetProduct(ctx, created.PID)
	require.NoError(t, err)
	assert.Equal(t, 9.99, got.Price)
	assert.Equal(t, 5, got.Stock)
	// description defaults to empty when omitted
	assert.Equal(t, "", got.Description)
}

func TestInventoryService_CreateProduct_InvalidNumbersRejected(t *testing.T) {
	svc := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		PName: strPtr("Widget"),
		Price: "cheap",
		Stock: float64(5),
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{
		PName: strPtr("Widget"),
		Price: 9.99,
		Stock: "many",
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestInventoryService_ListProducts_Summaries(t *testing.T) {
	svc := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		PName: strPtr("Widget"), Price: 9.99, Stock: float64(5),
	})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{
		PName: strPtr("Gadget"), Price: 19.99, Stock: float64(2),
	})
	require.NoError(t, err)

	summaries, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Widget", summaries[0].Name)
	assert.Equal(t, 9.99, summaries[0].Price)
	assert.Equal(t, 5, summaries[0].Stock)
}

func TestInventoryService_UpdateProduct_PartialMerge(t *testing.T) {
	svc := newInventoryService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		PName:       strPtr("Widget"),
		Description: strPtr("a widget"),
		Price:       9.99,
		Stock:       float64(5),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(ctx, created.PID, transport.UpdateProductRequest{
		Stock: float64(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, "Widget", updated.PName)
	assert.Equal(t, "a widget", updated.Description)
	assert.Equal(t, 9.99, updated.Price)
}

func TestInventoryService_UpdateProduct_ValidatesNumbersLikeCreate(t *testing.T) {
	svc := newInventoryService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		PName: strPtr("Widget"), Price: 9.99, Stock: float64(5),
	})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(ctx, created.PID, transport.UpdateProductRequest{
		Price: "free",
	})
	require.ErrorIs(t, err, ErrValidation)

	got, err := svc.GetProduct(ctx, created.PID)
	require.NoError(t, err)
	assert.Equal(t, 9.99, got.Price)
}

func TestInventoryService_UpdateProduct_NotFound(t *testing.T) {
	svc := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.UpdateProduct(ctx, 12345, transport.UpdateProductRequest{Stock: float64(1)})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInventoryService_DeleteProduct_ThenGetNotFound(t *testing.T) {
	svc := newInventoryService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		PName: strPtr("Widget"), Price: 9.99, Stock: float64(5),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.PID))

	_, err = svc.GetProduct(ctx, created.PID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.DeleteProduct(ctx, created.PID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
