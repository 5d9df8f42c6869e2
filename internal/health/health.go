// Package health reports database reachability over the standard gRPC health
// protocol and to the HTTP /healthz probe.
package health

import (
	"context"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Service is the name registered next to the overall ("") status.
const Service = "storefront"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Checker struct {
	srv     *health.Server
	pinger  Pinger
	healthy atomic.Bool
}

func NewChecker(pinger Pinger) *Checker {
	c := &Checker{srv: health.NewServer(), pinger: pinger}
	c.set(false)
	return c
}

func (c *Checker) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, c.srv)
}

func (c *Checker) Healthy() bool { return c.healthy.Load() }

func (c *Checker) set(ok bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		status = healthpb.HealthCheckResponse_SERVING
	}
	if prev := c.healthy.Swap(ok); prev != ok {
		log.WithField("serving", ok).Info("[health] status changed")
	}
	c.srv.SetServingStatus("", status)
	c.srv.SetServingStatus(Service, status)
}

// Check pings once and publishes the result.
func (c *Checker) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	err := c.pinger.Ping(ctx)
	if err != nil {
		log.WithError(err).Warn("[health] database ping failed")
	}
	c.set(err == nil)
	return err == nil
}

// Run checks every interval until ctx is done, then reports NOT_SERVING for
// good.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	c.Check(ctx)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			c.Check(ctx)
		case <-ctx.Done():
			c.healthy.Store(false)
			c.srv.Shutdown()
			return
		}
	}
}
