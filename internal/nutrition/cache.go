package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/workoutmanager/internal/telemetry/metrics"
	"github.com/2beens/workoutmanager/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultIngredientCacheTTL = time.Hour

// ingredientWrites are the updates changing what the cache holds.
type ingredientWrites interface {
	SetIngredientStatus(ctx context.Context, id int, status IngredientStatus) error
	AddWeightUnit(ctx context.Context, unit WeightUnit) (*WeightUnit, error)
	AddIngredientWeightUnit(ctx context.Context, iwu IngredientWeightUnit) (*IngredientWeightUnit, error)
}

// CachedIngredients keeps accepted ingredients in memory. Updates made through it
// drop the cached entry; updates made elsewhere (e.g. the manage cli) show up once
// the entry expires.
type CachedIngredients struct {
	source         IngredientLookup
	writes         ingredientWrites
	cache          *freecache.Cache
	ttl            time.Duration
	metricsManager *metrics.Manager
}

func NewCachedIngredients(
	source IngredientLookup,
	writes ingredientWrites,
	cacheSizeMB int,
	ttl time.Duration,
	metricsManager *metrics.Manager,
) *CachedIngredients {
	return &CachedIngredients{
		source:         source,
		writes:         writes,
		cache:          freecache.NewCache(cacheSizeMB * 1024 * 1024),
		ttl:            ttl,
		metricsManager: metricsManager,
	}
}

func ingredientCacheKey(id int) []byte {
	return []byte("ingredient:" + strconv.Itoa(id))
}

func (c *CachedIngredients) Ingredient(ctx context.Context, id int) (_ *Ingredient, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.nutrition.ingredient")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	key := ingredientCacheKey(id)
	if cached, err := c.cache.Get(key); err == nil {
		var ingredient Ingredient
		unmarshalErr := json.Unmarshal(cached, &ingredient)
		if unmarshalErr == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			c.metricsManager.IngredientCacheLookup(true)
			return &ingredient, nil
		}
		log.Errorf("unmarshal cached ingredient %d: %s", id, unmarshalErr)
		c.cache.Del(key)
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Errorf("get cached ingredient %d: %s", id, err)
	}

	span.SetAttributes(attribute.Bool("cache.hit", false))
	c.metricsManager.IngredientCacheLookup(false)

	ingredient, err := c.source.Ingredient(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ingredient.Status.Accepted() {
		return ingredient, nil
	}

	ingredientJson, err := json.Marshal(ingredient)
	if err != nil {
		log.Errorf("marshal ingredient %d for cache: %s", id, err)
		return ingredient, nil
	}
	if err := c.cache.Set(key, ingredientJson, int(c.ttl.Seconds())); err != nil {
		log.Errorf("cache ingredient %d: %s", id, err)
	}

	return ingredient, nil
}

// Invalidate drops the ingredient from the cache.
func (c *CachedIngredients) Invalidate(id int) {
	c.cache.Del(ingredientCacheKey(id))
}

func (c *CachedIngredients) SetIngredientStatus(ctx context.Context, id int, status IngredientStatus) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.nutrition.setIngredientStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if !status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if c.writes == nil {
		return errors.New("ingredient writes not configured")
	}

	defer c.Invalidate(id)
	return c.writes.SetIngredientStatus(ctx, id, status)
}

// AddIngredientUnit maps a weight unit, by name in the ingredient language, to grams
// for the ingredient. The unit is created when missing.
func (c *CachedIngredients) AddIngredientUnit(ctx context.Context, id int, unit UnitGrams) (_ *IngredientWeightUnit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.nutrition.addIngredientUnit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	unit.Name = strings.TrimSpace(unit.Name)
	if unit.Name == "" {
		return nil, fmt.Errorf("%w: unit name empty", ErrInvalidAmount)
	}
	if unit.Gram <= 0 || unit.Amount < 0 {
		return nil, fmt.Errorf("%w: unit %s needs positive grams", ErrInvalidAmount, unit.Name)
	}
	if c.writes == nil {
		return nil, errors.New("ingredient writes not configured")
	}

	ingredient, err := c.source.Ingredient(ctx, id)
	if err != nil {
		return nil, err
	}

	defer c.Invalidate(id)

	wu, err := c.writes.AddWeightUnit(ctx, WeightUnit{Name: unit.Name, Language: ingredient.Language})
	if err != nil {
		return nil, fmt.Errorf("add weight unit %s: %w", unit.Name, err)
	}
	iwu, err := c.writes.AddIngredientWeightUnit(ctx, IngredientWeightUnit{
		IngredientID: id,
		UnitID:       wu.ID,
		Amount:       unit.Amount,
		Gram:         unit.Gram,
	})
	if err != nil {
		return nil, fmt.Errorf("add ingredient weight unit %s: %w", unit.Name, err)
	}
	iwu.UnitName = wu.Name
	return iwu, nil
}
