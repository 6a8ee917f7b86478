package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"stockflow/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService interface {
	// Product caching
	GetProduct(ctx context.Context, productID int64) (*models.Product, error)
	SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error
	DeleteProduct(ctx context.Context, productID int64) error

	// Inventory caching
	GetInventory(ctx context.Context, productID, warehouseID int64) (*models.Inventory, error)
	SetInventory(ctx context.Context, inventory *models.Inventory, ttl time.Duration) error
	DeleteInventory(ctx context.Context, productID, warehouseID int64) error

	// Low-stock alert caching, keyed per company. Invalidated whenever a
	// write path touches the company's stock.
	GetAlertList(ctx context.Context, companyID int64) (*models.AlertList, error)
	SetAlertList(ctx context.Context, companyID int64, alerts *models.AlertList, ttl time.Duration) error
	DeleteAlertList(ctx context.Context, companyID int64) error

	Ping(ctx context.Context) error
	Close() error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func productKey(productID int64) string {
	return fmt.Sprintf("stockflow:product:%d", productID)
}

func inventoryKey(productID, warehouseID int64) string {
	return fmt.Sprintf("stockflow:inventory:%d:%d", productID, warehouseID)
}

func alertListKey(companyID int64) string {
	return fmt.Sprintf("stockflow:alerts:%d", companyID)
}

func (r *redisCacheService) GetProduct(ctx context.Context, productID int64) (*models.Product, error) {
	data, err := r.client.Get(ctx, productKey(productID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *redisCacheService) SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, productKey(product.ID), data, ttl).Err()
}

func (r *redisCacheService) DeleteProduct(ctx context.Context, productID int64) error {
	return r.client.Del(ctx, productKey(productID)).Err()
}

func (r *redisCacheService) GetInventory(ctx context.Context, productID, warehouseID int64) (*models.Inventory, error) {
	data, err := r.client.Get(ctx, inventoryKey(productID, warehouseID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var inventory models.Inventory
	if err := json.Unmarshal(data, &inventory); err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (r *redisCacheService) SetInventory(ctx context.Context, inventory *models.Inventory, ttl time.Duration) error {
	data, err := json.Marshal(inventory)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, inventoryKey(inventory.ProductID, inventory.WarehouseID), data, ttl).Err()
}

func (r *redisCacheService) DeleteInventory(ctx context.Context, productID, warehouseID int64) error {
	return r.client.Del(ctx, inventoryKey(productID, warehouseID)).Err()
}

func (r *redisCacheService) GetAlertList(ctx context.Context, companyID int64) (*models.AlertList, error) {
	data, err := r.client.Get(ctx, alertListKey(companyID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var alerts models.AlertList
	if err := json.Unmarshal(data, &alerts); err != nil {
		return nil, err
	}
	return &alerts, nil
}

func (r *redisCacheService) SetAlertList(ctx context.Context, companyID int64, alerts *models.AlertList, ttl time.Duration) error {
	data, err := json.Marshal(alerts)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, alertListKey(companyID), data, ttl).Err()
}

func (r *redisCacheService) DeleteAlertList(ctx context.Context, companyID int64) error {
	return r.client.Del(ctx, alertListKey(companyID)).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisCacheService) Close() error {
	return r.client.Close()
}
