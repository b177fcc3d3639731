package faucet

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/lendbit/token-faucet/config"
	"github.com/lendbit/token-faucet/faucet/backend"
	"github.com/lendbit/token-faucet/faucet/frontend"
	"github.com/lendbit/token-faucet/metrics"
	"github.com/lendbit/token-faucet/service/cliapp"
	"github.com/lendbit/token-faucet/service/httputil"
	opmetrics "github.com/lendbit/token-faucet/service/metrics"
)

type serviceBackend interface {
	frontend.FaucetBackend
	Stop(ctx context.Context) error
}

var _ serviceBackend = (*backend.Backend)(nil)

type Service struct {
	closing atomic.Bool

	log log.Logger

	backend serviceBackend

	metrics    metrics.Metricer
	metricsSrv *httputil.HTTPServer
	rpcServer  *rpc.Server
	httpServer *httputil.HTTPServer
}

var _ cliapp.Lifecycle = (*Service)(nil)

func FromConfig(ctx context.Context, cfg *config.Config, logger log.Logger) (*Service, error) {
	su := &Service{log: logger}
	if err := su.initFromCLIConfig(ctx, cfg); err != nil {
		return nil, errors.Join(err, su.Stop(ctx)) // try to clean up our failed initialization attempt
	}
	return su, nil
}

func (s *Service) initFromCLIConfig(ctx context.Context, cfg *config.Config) error {
	s.initMetrics(cfg)
	if err := s.initMetricsServer(cfg); err != nil {
		return fmt.Errorf("failed to start Metrics server: %w", err)
	}
	if err := s.initBackend(ctx, cfg); err != nil {
		return fmt.Errorf("failed to start backend: %w", err)
	}
	if err := s.initRPCServer(cfg); err != nil {
		return fmt.Errorf("failed to start RPC handler: %w", err)
	}
	s.initHTTPServer(cfg)
	return nil
}

func (s *Service) initMetrics(cfg *config.Config) {
	if cfg.MetricsConfig.Enabled {
		procName := "default"
		s.metrics = metrics.NewMetrics(procName)
		s.metrics.RecordInfo(cfg.Version)
	} else {
		s.metrics = metrics.NoopMetrics{}
	}
}

func (s *Service) initMetricsServer(cfg *config.Config) error {
	if !cfg.MetricsConfig.Enabled {
		s.log.Info("Metrics disabled")
		return nil
	}
	m, ok := s.metrics.(opmetrics.RegistryMetricer)
	if !ok {
		return fmt.Errorf("metrics were enabled, but metricer %T does not expose registry for metrics-server", s.metrics)
	}
	s.log.Debug("Starting metrics server", "addr", cfg.MetricsConfig.ListenAddr, "port", cfg.MetricsConfig.ListenPort)
	metricsSrv, err := opmetrics.StartServer(m.Registry(), cfg.MetricsConfig.ListenAddr, cfg.MetricsConfig.ListenPort)
	if err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	s.log.Info("Started metrics server", "addr", metricsSrv.Addr())
	s.metricsSrv = metricsSrv
	return nil
}

func (s *Service) initBackend(ctx context.Context, cfg *config.Config) error {
	catalog, err := cfg.Catalog.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if cfg.CheckCatalog {
		balances, err := backend.CheckCatalog(ctx, s.log, catalog, nil)
		if err != nil {
			return fmt.Errorf("catalog does not match chains: %w", err)
		}
		for _, b := range balances {
			s.log.Info("Checked token", "chain", b.Chain, "token", b.Token, "decimals", b.Decimals, "faucet_balance", b.Balance)
		}
	}
	b, err := backend.FromConfig(ctx, s.log, s.metrics, catalog, cfg.Signer)
	if err != nil {
		return fmt.Errorf("failed to setup backend: %w", err)
	}
	s.backend = b
	return nil
}

func (s *Service) initRPCServer(cfg *config.Config) error {
	if !cfg.RPC.EnableJSONRPC {
		return nil
	}
	s.log.Info("JSON-RPC faucet namespace enabled")
	s.rpcServer = rpc.NewServer()
	api := frontend.NewRPCFrontend(s.backend).API()
	if err := s.rpcServer.RegisterName(api.Namespace, api.Service); err != nil {
		return fmt.Errorf("failed to add faucet API: %w", err)
	}
	return nil
}

func (s *Service) initHTTPServer(cfg *config.Config) {
	endpoint := net.JoinHostPort(cfg.RPC.ListenAddr, strconv.Itoa(cfg.RPC.ListenPort))
	f := frontend.NewHTTPFrontend(s.log, s.metrics, s.backend, cfg.Version)
	var rpcHandler http.Handler
	if s.rpcServer != nil {
		rpcHandler = s.rpcServer
	}
	handler := frontend.NewHandler(s.log, f, rpcHandler, cfg.RPC.CORSOrigins)
	s.httpServer = httputil.NewHTTPServer(endpoint, handler)
}

func (s *Service) Start(ctx context.Context) error {
	s.log.Info("Starting faucet HTTP server")
	if err := s.httpServer.Start(); err != nil {
		return fmt.Errorf("unable to start HTTP server: %w", err)
	}

	s.metrics.RecordUp()
	s.log.Info("Faucet HTTP server started", "endpoint", s.httpServer.HTTPEndpoint())
	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	if !s.closing.CompareAndSwap(false, true) {
		s.log.Warn("Already closing")
		return nil // already closing
	}
	s.log.Info("Stopping faucet HTTP server")
	var result error
	if s.httpServer != nil {
		if err := s.httpServer.Stop(ctx); err != nil {
			result = errors.Join(result, fmt.Errorf("failed to stop HTTP server: %w", err))
		}
	}
	if s.rpcServer != nil {
		s.rpcServer.Stop()
	}
	s.log.Info("Stopped HTTP server")
	if s.backend != nil {
		if err := s.backend.Stop(ctx); err != nil {
			result = errors.Join(result, fmt.Errorf("failed to close backend: %w", err))
		}
	}
	s.log.Info("Stopped backend")
	if s.metricsSrv != nil {
		if err := s.metricsSrv.Stop(ctx); err != nil {
			result = errors.Join(result, fmt.Errorf("failed to stop metrics server: %w", err))
		}
	}
	s.log.Info("Faucet stopped")
	return result
}

func (s *Service) Stopped() bool {
	return s.closing.Load()
}

func (s *Service) HTTPEndpoint() string {
	return s.httpServer.HTTPEndpoint()
}

func (s *Service) RPC() string {
	return s.HTTPEndpoint() + "/rpc"
}

func (s *Service) MetricsEndpoint() string {
	if s.metricsSrv == nil {
		return ""
	}
	return s.metricsSrv.HTTPEndpoint()
}
