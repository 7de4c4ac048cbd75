package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/synergy360/kiosk/internal/application/port"
	"github.com/synergy360/kiosk/internal/logging"
)

// DefaultReconnectInterval is the delay between reachability retries while offline.
const DefaultReconnectInterval = 5 * time.Second

// ErrEmptySiteURL is returned by NewSiteLoader when no URL is configured.
var ErrEmptySiteURL = errors.New("site url is empty")

// SiteLoaderDeps are the collaborators of SiteLoader.
type SiteLoaderDeps struct {
	Loader       port.PageLoader
	Reachability port.Reachability
	Offline      port.OfflineIndicator
	Scheduler    port.Scheduler
}

// SiteLoader keeps the kiosk site on screen. While the network is down it
// shows the offline screen and retries on a fixed interval; at most one retry
// is pending at any time.
type SiteLoader struct {
	mu sync.Mutex

	url      string
	interval time.Duration

	loader    port.PageLoader
	reach     port.Reachability
	offline   port.OfflineIndicator
	scheduler port.Scheduler

	ctx       context.Context
	reconnect port.Timer
	gen       uint64
	isOffline bool
	stopped   bool
}

// NewSiteLoader creates a loader for url. A non-positive interval uses DefaultReconnectInterval.
func NewSiteLoader(deps SiteLoaderDeps, url string, interval time.Duration) (*SiteLoader, error) {
	if url == "" {
		return nil, ErrEmptySiteURL
	}
	if interval <= 0 {
		interval = DefaultReconnectInterval
	}
	return &SiteLoader{
		url:       url,
		interval:  interval,
		loader:    deps.Loader,
		reach:     deps.Reachability,
		offline:   deps.Offline,
		scheduler: deps.Scheduler,
		ctx:       context.Background(),
	}, nil
}

// URL returns the kiosk site.
func (s *SiteLoader) URL() string {
	return s.url
}

// Load navigates to the site if it is reachable, otherwise shows the
// offline screen and schedules a retry.
func (s *SiteLoader) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx = logging.WithURL(logging.WithComponent(ctx, "site-loader"), s.url)
	s.stopped = false
	s.attempt()
}

// OnLoadFinished hides the offline screen once the page has loaded and
// drops any pending retry.
func (s *SiteLoader) OnLoadFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelReconnect()
	s.goOnline()
}

// OnLoadFailed shows the offline screen and schedules a retry when the
// failure was caused by the network being down. Other failures are logged
// and left to the page.
func (s *SiteLoader) OnLoadFailed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logging.FromContext(s.ctx)
	if s.stopped {
		return
	}
	if s.reachable() {
		log.Warn().Err(err).Msg("page load failed while network is reachable")
		return
	}
	log.Warn().Err(err).Msg("page load failed, network unreachable")
	s.goOffline()
}

// Stop cancels any pending retry. Load restarts the loader.
func (s *SiteLoader) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	s.cancelReconnect()
}

// Retry attempts the site right away when the offline screen is showing,
// replacing the pending retry. It does nothing while online or stopped.
func (s *SiteLoader) Retry() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || !s.isOffline {
		return
	}
	s.attempt()
}

// IsOffline reports whether the offline screen is showing.
func (s *SiteLoader) IsOffline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOffline
}

// attempt loads the page or goes offline. Caller holds mu.
func (s *SiteLoader) attempt() {
	log := logging.FromContext(s.ctx)

	if !s.reachable() {
		log.Info().Dur("retry_in", s.interval).Msg("network unreachable, showing offline screen")
		s.goOffline()
		return
	}

	s.cancelReconnect()
	s.goOnline()
	if s.loader == nil {
		return
	}
	if err := s.loader.LoadURI(s.ctx, s.url); err != nil {
		log.Error().Err(err).Msg("failed to load site")
		s.goOffline()
	}
}

// goOffline shows the offline screen and replaces any pending retry. Caller holds mu.
func (s *SiteLoader) goOffline() {
	if !s.isOffline && s.offline != nil {
		s.offline.ShowOffline()
	}
	s.isOffline = true

	s.cancelReconnect()
	if s.scheduler == nil {
		return
	}
	gen := s.gen
	s.reconnect = s.scheduler.AfterFunc(s.interval, func() {
		s.onReconnect(gen)
	})
}

func (s *SiteLoader) onReconnect(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || gen != s.gen {
		return
	}
	s.reconnect = nil
	logging.FromContext(s.ctx).Debug().Msg("retrying site")
	s.attempt()
}

// goOnline hides the offline screen if it is showing. Caller holds mu.
func (s *SiteLoader) goOnline() {
	if s.isOffline && s.offline != nil {
		s.offline.HideOffline()
	}
	s.isOffline = false
}

// cancelReconnect drops the pending retry. Caller holds mu.
func (s *SiteLoader) cancelReconnect() {
	if s.reconnect != nil {
		s.reconnect.Stop()
		s.reconnect = nil
	}
	s.gen++
}

func (s *SiteLoader) reachable() bool {
	if s.reach == nil {
		return true
	}
	return s.reach.IsReachable(s.ctx)
}
