package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/internal/domain/repository"
	"github.com/jhoicas/crm-sync-hook/pkg/config"
	"github.com/jhoicas/crm-sync-hook/pkg/logger"
)

const keyPrefix = "crm-sync:lookup"

var (
	_ repository.SearchRepository  = (*LookupCache)(nil)
	_ repository.LookupInvalidator = (*LookupCache)(nil)
)

// Client subconjunto de comandos de Redis que usa la caché. *goredis.Client lo implementa.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *goredis.ScanCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// LookupCache decora un SearchRepository con caché read-through en Redis.
// Si Redis falla la consulta va directo al repositorio; la caché nunca es fuente de error.
// Los resultados vacíos no se cachean: un cliente recién vinculado al CRM se ve en la siguiente consulta.
type LookupCache struct {
	client Client
	inner  repository.SearchRepository
	ttl    time.Duration
	log    *logger.Logger
}

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewLookupCache construye el decorador. ttl 0 desactiva la escritura en caché.
func NewLookupCache(client Client, inner repository.SearchRepository, ttl time.Duration, log *logger.Logger) *LookupCache {
	if log == nil {
		log = logger.Nop()
	}
	return &LookupCache{client: client, inner: inner, ttl: ttl, log: log.Component("redis.lookup_cache")}
}

// LookupFields devuelve los valores cacheados o consulta el repositorio y guarda el resultado.
func (c *LookupCache) LookupFields(ctx context.Context, recordType entity.RecordType, id string, fields ...string) (map[string]string, error) {
	if c.ttl <= 0 || len(fields) == 0 {
		return c.inner.LookupFields(ctx, recordType, id, fields...)
	}
	key := LookupKey(recordType, id, fields)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var values map[string]string
		if jsonErr := json.Unmarshal(data, &values); jsonErr == nil {
			return values, nil
		}
		c.log.Warn().Str("key", key).Msg("entrada de caché corrupta, se ignora")
	case errors.Is(err, goredis.Nil):
	default:
		c.log.Warn().Err(err).Str("key", key).Msg("redis no disponible, consulta directa")
	}

	values, err := c.inner.LookupFields(ctx, recordType, id, fields...)
	if err != nil {
		return nil, err
	}
	if allEmpty(values) {
		return values, nil
	}
	if payload, jsonErr := json.Marshal(values); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.log.Debug().Err(setErr).Str("key", key).Msg("no se pudo escribir en caché")
		}
	}
	return values, nil
}

// Invalidate borra todas las entradas cacheadas del registro.
func (c *LookupCache) Invalidate(ctx context.Context, recordType entity.RecordType, id string) error {
	pattern := fmt.Sprintf("%s:%s:%s:*", keyPrefix, recordType, id)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func allEmpty(values map[string]string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}

// LookupKey clave de caché; el orden de los campos no altera la clave.
func LookupKey(recordType entity.RecordType, id string, fields []string) string {
	sorted := append([]string(nil), fields...)
	sort.Strings(sorted)
	return fmt.Sprintf("%s:%s:%s:%s", keyPrefix, recordType, id, strings.Join(sorted, ","))
}
