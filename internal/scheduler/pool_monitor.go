// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dish-ranking-api/internal/config"
)

// StatsProvider é implementado pelos pools SQL do Record Store
type StatsProvider interface {
	Stats() sql.DBStats
}

type PoolMonitorConfig struct {
	CronSchedule string
	Enabled      bool
}

// PoolMonitorStatus é o último retrato coletado do pool
type PoolMonitorStatus struct {
	Running         bool
	LastCollectedAt time.Time
	Stats           sql.DBStats
}

// PoolMonitorService registra periodicamente as estatísticas do pool de conexões
// e avisa quando requisições passaram a esperar por conexão.
type PoolMonitorService struct {
	scheduler *gocron.Scheduler
	pool      StatsProvider
	config    PoolMonitorConfig

	mutex           sync.Mutex
	running         bool
	lastCollectedAt time.Time
	lastStats       sql.DBStats
}

func NewPoolMonitorService(pool StatsProvider, cfg *config.Config) *PoolMonitorService {
	monitorConfig := PoolMonitorConfig{
		CronSchedule: cfg.PoolMonitor.CronSchedule, // Default: a cada 5 minutos
		Enabled:      cfg.PoolMonitor.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": monitorConfig.CronSchedule,
	}).Info("Configuração do monitor do pool de conexões carregada")

	return &PoolMonitorService{
		scheduler: gocron.NewScheduler(time.Local),
		pool:      pool,
		config:    monitorConfig,
	}
}

func (s *PoolMonitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor do pool de conexões desabilitado por configuração")
		return nil
	}

	if s.pool == nil {
		logrus.Info("Backend sem pool de conexões, monitor não será iniciado")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando monitor do pool de conexões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.Collect)
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor do pool de conexões: %w", err)
	}

	s.mutex.Lock()
	s.running = true
	s.mutex.Unlock()

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor do pool de conexões")
		s.scheduler.Stop()

		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	return nil
}

// Collect lê as estatísticas atuais do pool e registra no log
func (s *PoolMonitorService) Collect() {
	stats := s.pool.Stats()

	s.mutex.Lock()
	previous := s.lastStats
	s.lastStats = stats
	s.lastCollectedAt = time.Now()
	s.mutex.Unlock()

	entry := logrus.WithFields(logrus.Fields{
		"open_connections": stats.OpenConnections,
		"max_open":         stats.MaxOpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"wait_count":       stats.WaitCount,
		"wait_duration_ms": stats.WaitDuration.Milliseconds(),
		"max_idle_closed":  stats.MaxIdleTimeClosed,
	})

	if waited := stats.WaitCount - previous.WaitCount; waited > 0 {
		entry.WithField("new_waits", waited).Warn("Requisições aguardaram por conexão desde a última coleta")
		return
	}

	entry.Info("Estatísticas do pool de conexões")
}

func (s *PoolMonitorService) Status() PoolMonitorStatus {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return PoolMonitorStatus{
		Running:         s.running,
		LastCollectedAt: s.lastCollectedAt,
		Stats:           s.lastStats,
	}
}
