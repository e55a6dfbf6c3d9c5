package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName - имя сервиса в health-проверках.
const ServiceName = "laundry.v1.LaundryService"

// Pinger - то, что умеет *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthServer struct {
	srv    *health.Server
	pinger Pinger
	log    *zap.Logger
}

// NewServer собирает gRPC-сервер с health и reflection. Статус ставит Watch.
func NewServer(pinger Pinger, log *zap.Logger) (*grpc.Server, *HealthServer) {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(NewLoggingUnaryServerInterceptor(log)),
	)

	hs := &HealthServer{srv: health.NewServer(), pinger: pinger, log: log}
	hs.set(grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, hs.srv)

	reflection.Register(grpcServer)
	return grpcServer, hs
}

// Check пингует БД один раз и выставляет статус.
func (h *HealthServer) Check(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	st := grpc_health_v1.HealthCheckResponse_SERVING
	if err := h.pinger.PingContext(ctx); err != nil {
		h.log.Warn("БД недоступна", zap.Error(err))
		st = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	h.set(st)
	return st
}

// Watch периодически вызывает Check до отмены ctx; при выходе - NOT_SERVING.
func (h *HealthServer) Watch(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	h.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			h.srv.Shutdown()
			return
		case <-t.C:
			h.Check(ctx)
		}
	}
}

func (h *HealthServer) set(st grpc_health_v1.HealthCheckResponse_ServingStatus) {
	h.srv.SetServingStatus("", st)
	h.srv.SetServingStatus(ServiceName, st)
}

func NewLoggingUnaryServerInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			log.Warn("grpc call failed", zap.String("method", info.FullMethod), zap.Duration("took", time.Since(start)), zap.Error(err))
		} else {
			log.Debug("grpc call", zap.String("method", info.FullMethod), zap.Duration("took", time.Since(start)))
		}
		return resp, err
	}
}
