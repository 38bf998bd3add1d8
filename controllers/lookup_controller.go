package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ashwinpillai/hirehub_backend/config"
	"github.com/ashwinpillai/hirehub_backend/models"
	"github.com/ashwinpillai/hirehub_backend/utils"
)

const lookupCacheTTL = 10 * time.Minute

// LookupController serves the seven reference-data categories that populate
// form dropdowns, with a Redis cache in front of Mongo.
type LookupController struct {
	DB     *mongo.Client
	Redis  *redis.Client
	logger *log.Logger
}

// NewLookupController creates a new lookup controller
func NewLookupController(db *mongo.Client, rdb *redis.Client) *LookupController {
	return &LookupController{
		DB:     db,
		Redis:  rdb,
		logger: log.New(os.Stdout, "[LOOKUP] ", log.LstdFlags),
	}
}

func lookupCacheKey(category string) string {
	return "lookups:" + category
}

// fetchCategory loads one category's rows, preferring the cache. Rows are
// sorted by lookup ID so dropdown order is stable.
func (lc *LookupController) fetchCategory(ctx context.Context, category string) ([]models.LookupItem, error) {
	if lc.Redis != nil {
		cached, err := lc.Redis.Get(ctx, lookupCacheKey(category)).Result()
		if err == nil {
			var items []models.LookupItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	cursor, err := config.GetCollection(lc.DB, "lookups").Find(ctx,
		bson.M{"category": category},
		options.Find().SetSort(bson.D{{Key: "lookupId", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.LookupItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	if lc.Redis != nil {
		// Cache the raw rows, not the wire form; MarshalJSON on LookupItem
		// renders category-specific field names, so cache plain structs.
		type cacheRow struct {
			Category string `json:"category"`
			LookupID int    `json:"lookupId"`
			Name     string `json:"name"`
		}
		rows := make([]cacheRow, len(items))
		for i, it := range items {
			rows[i] = cacheRow{Category: it.Category, LookupID: it.LookupID, Name: it.Name}
		}
		if payload, err := json.Marshal(rows); err == nil {
			if err := lc.Redis.Set(ctx, lookupCacheKey(category), payload, lookupCacheTTL).Err(); err != nil {
				lc.logger.Printf("Failed to cache %s: %v", category, err)
			}
		}
	}

	return items, nil
}

func (lc *LookupController) invalidateCache(ctx context.Context, category string) {
	if lc.Redis == nil {
		return
	}
	if err := lc.Redis.Del(ctx, lookupCacheKey(category)).Err(); err != nil {
		lc.logger.Printf("Failed to invalidate cache for %s: %v", category, err)
	}
}

// GetAll handles GET /api/lookups: all seven categories fetched
// concurrently. A failing category comes back as an empty list and is named
// in the message; the others still load, so one bad set never blanks every
// dropdown on the form.
func (lc *LookupController) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result = make(map[string][]models.LookupItem, len(models.LookupCategories))
		failed []string
	)

	for _, category := range models.LookupCategories {
		wg.Add(1)
		go func(category string) {
			defer wg.Done()
			items, err := lc.fetchCategory(ctx, category)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				lc.logger.Printf("Failed to load %s: %v", category, err)
				result[category] = []models.LookupItem{}
				failed = append(failed, category)
				return
			}
			result[category] = items
		}(category)
	}
	wg.Wait()

	message := "Lookups retrieved successfully"
	if len(failed) > 0 {
		message = "Some lookup categories failed to load: " + joinSorted(failed)
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: len(failed) == 0,
		Message: message,
		Data:    result,
	})
}

// GetCategory handles GET /api/lookups/:category.
func (lc *LookupController) GetCategory(c echo.Context) error {
	category := c.Param("category")
	if !models.ValidCategory(category) {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Unknown lookup category",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := lc.fetchCategory(ctx, category)
	if err != nil {
		lc.logger.Printf("Failed to load %s: %v", category, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to retrieve lookup category",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Lookup category retrieved successfully",
		Data:    items,
	})
}

// AddOption handles POST /api/lookups/:category. Admin only.
func (lc *LookupController) AddOption(c echo.Context) error {
	category := c.Param("category")
	if !models.ValidCategory(category) {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Unknown lookup category",
		})
	}

	var req models.AddLookupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	req.Name = utils.SanitizeInput(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Option name is required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(lc.DB, "lookups")

	count, err := collection.CountDocuments(ctx, bson.M{
		"category": category,
		"name":     exactMatchRegex(req.Name),
	})
	if err == nil && count > 0 {
		return c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Message: "An option with this name already exists",
		})
	}

	lookupID, err := config.NextSequence(ctx, lc.DB, "lookups:"+category)
	if err != nil {
		lc.logger.Printf("Failed to allocate lookup ID for %s: %v", category, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to add option",
		})
	}

	item := models.LookupItem{
		Category:  category,
		LookupID:  lookupID,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if _, err := collection.InsertOne(ctx, item); err != nil {
		lc.logger.Printf("Failed to insert lookup option: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to add option",
		})
	}

	lc.invalidateCache(ctx, category)

	return c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Option added successfully",
		Data:    item,
	})
}

// RemoveOption handles DELETE /api/lookups/:category/:id. Admin only.
func (lc *LookupController) RemoveOption(c echo.Context) error {
	category := c.Param("category")
	if !models.ValidCategory(category) {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Unknown lookup category",
		})
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid option ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.GetCollection(lc.DB, "lookups").DeleteOne(ctx, bson.M{
		"category": category,
		"lookupId": id,
	})
	if err != nil {
		lc.logger.Printf("Failed to delete lookup option: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to remove option",
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Option not found",
		})
	}

	lc.invalidateCache(ctx, category)

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Option removed successfully",
	})
}
