package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DEFAULT_COURSE_PRICE", "")
	t.Setenv("PENDING_ORDER_TTL_MINUTES", "")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 399.0, cfg.DefaultCoursePrice)
	assert.Equal(t, 30*time.Minute, cfg.PendingOrderTTL)
	assert.Equal(t, "@every 5m", cfg.OrderSweepSchedule)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DEFAULT_COURSE_PRICE", "499.5")
	t.Setenv("PENDING_ORDER_TTL_MINUTES", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 499.5, cfg.DefaultCoursePrice)
	assert.Equal(t, 30*time.Minute, cfg.PendingOrderTTL)
}
