package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"mealweek/entities"
)

var appStart = time.Now()

type HealthCtrl struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db, timeout: 800 * time.Millisecond} }

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	checks := map[string]check{
		"database": h.ping(ctx),
		"schema":   h.schema(),
	}
	allOK := true
	for _, ch := range checks {
		allOK = allOK && ch.OK
	}

	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     checks,
		"time":       time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) ping(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

// schema reports whether the planner tables exist.
func (h *HealthCtrl) schema() check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	m := h.db.Migrator()
	for _, model := range []any{&entities.Recipe{}, &entities.WeekDay{}} {
		if !m.HasTable(model) {
			return check{Err: "missing table"}
		}
	}
	return check{OK: true}
}
