package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tHeiieh/inventory-api/internal/events"
	"github.com/tHeiieh/inventory-api/internal/logging"
	"github.com/tHeiieh/inventory-api/internal/models"
	"github.com/tHeiieh/inventory-api/internal/repo"
	"github.com/tHeiieh/inventory-api/internal/search"
	"github.com/tHeiieh/inventory-api/internal/transport"
)

type InventoryService struct {
	Repo         *repo.GormRepo
	Producer     *events.Producer
	Indexer      *search.Indexer
	ProductTopic string
}

func (s *InventoryService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	price, err := transport.ToFloat(req.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	stock, err := transport.ToInt(req.Stock)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	prod := models.Product{
		PName: *req.PName,
		Price: price,
		Stock: stock,
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}

	if _, err := s.Repo.CreateProduct(ctx, &prod); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, &prod, "product_created")
	return &prod, nil
}

func (s *InventoryService) GetProduct(ctx context.Context, pid uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, pid)
}

func (s *InventoryService) ListProducts(ctx context.Context) ([]transport.ProductSummary, error) {
	items, err := s.Repo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]transport.ProductSummary, len(items))
	for i, p := range items {
		summaries[i] = transport.ProductSummary{
			ID:    p.PID,
			Name:  p.PName,
			Price: p.Price,
			Stock: p.Stock,
		}
	}
	return summaries, nil
}

// UpdateProduct merges only the fields present in the request. Numeric fields
// go through the same coercion as CreateProduct, so a malformed price or stock
// is rejected instead of written through.
func (s *InventoryService) UpdateProduct(ctx context.Context, pid uint, req transport.UpdateProductRequest) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, pid)
	if err != nil {
		return nil, err
	}

	if req.Price != nil {
		price, err := transport.ToFloat(req.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		prod.Price = price
	}
	if req.Stock != nil {
		stock, err := transport.ToInt(req.Stock)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		prod.Stock = stock
	}
	if req.PName != nil {
		prod.PName = *req.PName
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}

	if err := s.Repo.SaveProduct(ctx, prod); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, prod, "product_updated")
	return prod, nil
}

func (s *InventoryService) DeleteProduct(ctx context.Context, pid uint) error {
	if err := s.Repo.DeleteProduct(ctx, pid); err != nil {
		return err
	}

	s.publish(ctx, fmt.Sprint(pid), map[string]any{
		"type":       "product_deleted",
		"product_id": pid,
	})
	if err := s.Indexer.DeleteProduct(ctx, pid); err != nil {
		logging.FromContext(ctx).Error("search_deindex_failed", "product_id", pid, "error", err)
	}
	return nil
}

func (s *InventoryService) afterWrite(ctx context.Context, prod *models.Product, eventType string) {
	s.publish(ctx, fmt.Sprint(prod.PID), map[string]any{
		"type":       eventType,
		"product_id": prod.PID,
		"name":       prod.PName,
	})
	if err := s.Indexer.IndexProduct(ctx, prod); err != nil {
		logging.FromContext(ctx).Error("search_index_failed", "product_id", prod.PID, "error", err)
	}
}

func (s *InventoryService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, s.ProductTopic, key, event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", s.ProductTopic, "error", err)
	}
}
