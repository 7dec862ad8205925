// Package pricing общается с внешним прайсинг API: клиент каталога и фоновый прогрев кеша.
package pricing

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	defaultAPITimeout      = 10 * time.Second
	defaultRefreshInterval = 50 * time.Minute
)

//go:generate mockgen -source=refresher.go -destination=mocks/mocks.go -package=mocks

// Servicer часть сервисного слоя, нужная рефрешеру.
type Servicer interface {
	RefreshMinPrices(ctx context.Context) ([]domain.ItemSummary, error)
}

// Refresher периодически перезаписывает закешированный каталог, чтоб запросы юзеров
// пореже упирались в холодный кеш. Кеш остается единственным блобом, конкурентная
// запись с обработчиком промаха безобидна - побеждает последняя.
type Refresher struct {
	svs      Servicer
	l        *logrus.Entry
	interval time.Duration
}

// NewRefresher создает новый экземпляр фонового обновителя каталога.
func NewRefresher(svs Servicer, l *logrus.Logger) *Refresher {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "pricing",
		"module":    "refresher",
	})

	return &Refresher{
		svs:      svs,
		l:        loggerEntry,
		interval: defaultRefreshInterval,
	}
}

// SetInterval устанавливает период обновления каталога.
func (r *Refresher) SetInterval(interval time.Duration) *Refresher {
	if interval > 0 {
		r.interval = interval
	}
	return r
}

// Run запускает цикл обновления каталога до отмены контекста.
func (r *Refresher) Run(ctx context.Context) {
	r.l.WithField("interval", r.interval.String()).Info("Starting")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
	defer cancel()

	if _, err := r.svs.RefreshMinPrices(reqCtx); err != nil {
		r.l.WithError(err).Error("refresh error")
		return
	}
	r.l.Debug("catalog refreshed")
}
