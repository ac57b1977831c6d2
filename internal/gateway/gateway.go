package gateway

//go:generate $MOCKGEN -source=gateway.go -destination=mocks/gateway_mock.go

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/sann404/sannmusic/internal/cache"
	"github.com/sann404/sannmusic/internal/config"
	"github.com/sann404/sannmusic/internal/logger"
	http_transport "github.com/sann404/sannmusic/internal/transport/http"
	"github.com/sann404/sannmusic/internal/utils"
)

// State is a lifecycle phase of the gateway.
type State int32

// Gateway lifecycle phases. The gateway moves strictly forward:
// idle, installing, active, serving.
const (
	StateIdle State = iota
	StateInstalling
	StateActive
	StateServing
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInstalling:
		return "installing"
	case StateActive:
		return "active"
	case StateServing:
		return "serving"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Partition names inside the content cache. Exported so collaborating
// components resolve the same partitions the gateway serves from.
const (
	// ShellPartitionName holds the app shell.
	ShellPartitionName = "app-shell"
	// AudioPartitionName holds downloaded audio payloads.
	AudioPartitionName = "audio"
)

// commandMailboxSize bounds the number of queued commands.
const commandMailboxSize = 16

// Static error definitions for better error handling.
var (
	// ErrGatewayNotServing indicates the gateway has not reached the serving
	// state yet or has already shut down. Senders should fall back to direct
	// network access.
	ErrGatewayNotServing = errors.New("gateway is not serving")
	// ErrCommandTimeout indicates the gateway did not acknowledge a command
	// within the configured timeout.
	ErrCommandTimeout = errors.New("gateway command timed out")
)

// Sender posts commands to a running gateway.
type Sender interface {
	// Send posts a command and waits for its acknowledgement.
	Send(ctx context.Context, command Command) (*Ack, error)
}

// Gateway is the long-lived interception component. It owns the cache
// partitions, the interceptor and the command mailbox.
type Gateway struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// store is the content cache the partitions live in.
	store *cache.Store
	// origin is the parsed remote origin.
	origin *url.URL
	// manifest describes the app shell.
	manifest *ShellManifest
	// networkTransport performs real network calls.
	networkTransport http.RoundTripper
	// interceptor applies the caching policy. Set during installation.
	interceptor *Interceptor
	// networkClient fetches shell and audio payloads during install and
	// command handling.
	networkClient *http.Client
	// commands is the mailbox serviced by the serving loop.
	commands chan *commandEnvelope
	// state is the current lifecycle phase.
	state atomic.Int32
	// mutex guards registered.
	mutex sync.Mutex
	// registered are the HTTP clients to claim on activation.
	registered []*http.Client
}

// NewGateway creates an idle gateway for the configured origin.
func NewGateway(cfg *config.Config, store *cache.Store, manifest *ShellManifest) (*Gateway, error) {
	origin, err := url.Parse(cfg.OriginURL)
	if err != nil {
		return nil, fmt.Errorf("invalid origin URL: %w", err)
	}

	networkTransport := http_transport.NewUserAgentInjector(
		http_transport.NewLogTransport(http.DefaultTransport, 0),
		utils.NewStaticUserAgentProvider(http_transport.DefaultUserAgent))

	return &Gateway{
		cfg:              cfg,
		store:            store,
		origin:           origin,
		manifest:         manifest,
		networkTransport: networkTransport,
		networkClient: &http.Client{
			Transport: networkTransport,
			Timeout:   http_transport.DefaultTimeout,
		},
		commands: make(chan *commandEnvelope, commandMailboxSize),
	}, nil
}

// State returns the current lifecycle phase.
func (g *Gateway) State() State {
	return State(g.state.Load())
}

// RegisterClient adds an HTTP client to be claimed on activation.
// Clients registered after activation are claimed immediately.
func (g *Gateway) RegisterClient(client *http.Client) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.registered = append(g.registered, client)

	if g.State() >= StateActive {
		g.claimClient(client)
	}
}

// Run drives the gateway through installation and activation, then serves
// commands until the context is cancelled.
func (g *Gateway) Run(ctx context.Context) error {
	if err := g.install(ctx); err != nil {
		return fmt.Errorf("failed to install gateway: %w", err)
	}

	if err := g.activate(ctx); err != nil {
		return fmt.Errorf("failed to activate gateway: %w", err)
	}

	g.serve(ctx)

	return nil
}

// Send posts a command to the mailbox and waits for its acknowledgement.
func (g *Gateway) Send(ctx context.Context, command Command) (*Ack, error) {
	if g.State() != StateServing {
		return nil, ErrGatewayNotServing
	}

	envelope := &commandEnvelope{
		command:       command,
		correlationID: uuid.NewString(),
		reply:         make(chan Ack, 1),
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, g.cfg.ParsedGatewayCommandTimeout)
	defer cancel()

	select {
	case g.commands <- envelope:
	case <-timeoutCtx.Done():
		return nil, fmt.Errorf("%w: mailbox is full", ErrCommandTimeout)
	}

	select {
	case ack := <-envelope.reply:
		return &ack, nil
	case <-timeoutCtx.Done():
		return nil, ErrCommandTimeout
	}
}

// install populates the shell partition from the manifest.
// Individual path failures are logged and skipped so that a partially
// reachable origin still yields a usable shell.
func (g *Gateway) install(ctx context.Context) error {
	g.state.Store(int32(StateInstalling))
	logger.Infof(ctx, "Installing app shell v%d (%d paths)", g.manifest.Version, len(g.manifest.Paths))

	shellPartition, err := g.store.Partition(ShellPartitionName, g.manifest.Version)
	if err != nil {
		return err
	}

	audioPartition, err := g.store.Partition(AudioPartitionName, g.cfg.AudioCacheVersion)
	if err != nil {
		return err
	}

	for _, shellPath := range g.manifest.Paths {
		if err = g.cacheShellPath(ctx, shellPartition, shellPath); err != nil {
			logger.Warnf(ctx, "Skipping shell path '%s': %v", shellPath, err)
		}
	}

	g.interceptor = NewInterceptor(
		g.networkTransport, g.origin, shellPartition, audioPartition, g.manifest.Paths)

	return nil
}

// activate purges stale partition versions and claims registered clients.
func (g *Gateway) activate(ctx context.Context) error {
	g.state.Store(int32(StateActive))

	if err := g.store.PurgeStale(ctx, ShellPartitionName, g.manifest.Version); err != nil {
		logger.Warnf(ctx, "Failed to purge stale shell partitions: %v", err)
	}

	if err := g.store.PurgeStale(ctx, AudioPartitionName, g.cfg.AudioCacheVersion); err != nil {
		logger.Warnf(ctx, "Failed to purge stale audio partitions: %v", err)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	for _, client := range g.registered {
		g.claimClient(client)
	}

	logger.Infof(ctx, "Gateway active, claimed %d clients", len(g.registered))

	return nil
}

// claimClient swaps the client's transport for the interceptor in place,
// so in-flight callers pick up the caching policy without a restart.
func (g *Gateway) claimClient(client *http.Client) {
	next := client.Transport
	if next == nil {
		next = g.networkTransport
	}

	client.Transport = NewInterceptor(
		next, g.origin, g.interceptor.shellPartition, g.interceptor.audioPartition, g.manifest.Paths)
}

// serve runs the command loop until the context is cancelled.
func (g *Gateway) serve(ctx context.Context) {
	g.state.Store(int32(StateServing))
	logger.Infof(ctx, "Gateway is serving")

	for {
		select {
		case <-ctx.Done():
			g.state.Store(int32(StateIdle))
			logger.Infof(ctx, "Gateway stopped: %v", ctx.Err())

			return
		case envelope := <-g.commands:
			g.handleCommand(ctx, envelope)
		}
	}
}

// handleCommand dispatches a single mailbox command.
// Unknown command types are dropped with a warning and never acknowledged,
// mirroring a mailbox that only answers what it understands.
func (g *Gateway) handleCommand(ctx context.Context, envelope *commandEnvelope) {
	switch envelope.command.Type {
	case CommandTypeCacheAudio:
		ack := g.cacheAudio(ctx, envelope)
		envelope.reply <- ack
	default:
		logger.Warnf(ctx, "Ignoring unknown command type '%s' (correlation ID: %s)",
			envelope.command.Type, envelope.correlationID)
	}
}

// cacheAudio fetches the command URL through the interceptor, which stores
// a successful payload in the audio partition as a side effect. An already
// cached URL is acknowledged without touching the network.
func (g *Gateway) cacheAudio(ctx context.Context, envelope *commandEnvelope) Ack {
	targetURL := envelope.command.URL

	logger.Infof(ctx, "Caching audio '%s' (correlation ID: %s)", targetURL, envelope.correlationID)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, http.NoBody)
	if err != nil {
		return Ack{OK: false, Error: err.Error()}
	}

	response, err := g.interceptor.RoundTrip(request)
	if err != nil {
		return Ack{OK: false, Error: err.Error()}
	}

	closeQuietlyBody(ctx, response.Body)

	if !isSuccess(response.StatusCode) {
		return Ack{OK: false, Error: fmt.Sprintf("unexpected HTTP status: %d", response.StatusCode)}
	}

	return Ack{OK: true}
}

// cacheShellPath fetches one shell path from the origin and stores it.
func (g *Gateway) cacheShellPath(ctx context.Context, partition *cache.Partition, shellPath string) error {
	route := g.origin.JoinPath(shellPath)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route.String(), http.NoBody)
	if err != nil {
		return err
	}

	response, err := g.networkClient.Do(request)
	if err != nil {
		return err
	}

	defer closeQuietlyBody(ctx, response.Body)

	if !isSuccess(response.StatusCode) {
		return fmt.Errorf("unexpected HTTP status: %d", response.StatusCode)
	}

	_, err = partition.Put(ctx, cacheKey(request.URL), response.Header.Get("Content-Type"), response.Body)

	return err
}
