package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/usecase"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"
)

const DefaultPollInterval = 2 * time.Minute

// Poller is the long-running reconciliation loop. The rest of the system only
// sees Start and Stop; cycle internals live in the reconciliation use case.
//
// Cycle panics and errors are logged and swallowed: the loop runs until Stop.
// Stop is immediate during the inter-cycle wait; an in-flight cycle finishes
// its current attempt before observing cancellation.

type Poller struct {
	uc       usecase.IReconciliationUseCase
	registry interfaces.IGatewayRegistry
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func NewPoller(uc usecase.IReconciliationUseCase, registry interfaces.IGatewayRegistry, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{uc: uc, registry: registry, interval: interval}
}

func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.loop(ctx)
	log.Printf("[reconcile][worker] poller started interval=%s providers=%d", p.interval, len(p.registry.Providers()))
}

func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel := p.cancel
	done := p.done
	p.mu.Unlock()

	cancel()
	<-done
	log.Printf("[reconcile][worker] poller stopped")
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// run once at startup instead of waiting a full interval
	p.runAllProviders(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.runAllProviders(ctx)
		}
	}
}

func (p *Poller) runAllProviders(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	for _, provider := range p.registry.Providers() {
		if ctx.Err() != nil {
			return
		}
		p.runCycle(ctx, provider)
	}
}

// runCycle isolates one provider cycle so that a panic or error cannot take
// the loop down.
func (p *Poller) runCycle(ctx context.Context, provider entities.PaymentProvider) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[reconcile][worker] cycle panic provider=%s recovered=%v", provider, r)
		}
	}()

	result, err := p.uc.RunCycle(ctx, provider)
	if err != nil {
		log.Printf("[reconcile][worker] cycle failed provider=%s err=%v", provider, err)
		return
	}
	if result.Scanned > 0 {
		log.Printf("[reconcile][worker] cycle ok provider=%s scanned=%d succeeded=%d failed=%d", provider, result.Scanned, result.Succeeded, result.Failed)
	}
}
