// Package display owns the state of the heatmap page: the dataset once it is
// loaded, the load phase and the tooltip.
package display

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/midbel/heatmap/temperature"
)

var (
	ErrNotReady    = errors.New("dataset not loaded")
	ErrUnknownCell = errors.New("unknown cell")
)

// Loader gives the dataset to display.
type Loader interface {
	Load(context.Context) (temperature.Dataset, error)
}

// Session moves from PhaseNotLoaded to PhaseLoading when started and to
// PhaseReady once the dataset is loaded. A failed load leaves the session in
// PhaseLoading for good.
type Session struct {
	loader Loader
	logger *zap.Logger

	once sync.Once
	done chan struct{}

	mu      sync.RWMutex
	phase   Phase
	err     error
	dataset temperature.Dataset
	view    view
	tooltip Tooltip
}

func NewSession(loader Loader, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		loader: loader,
		logger: logger.Named("session"),
		done:   make(chan struct{}),
	}
}

// Start fetches the dataset in the background. Only the first call has an
// effect.
func (s *Session) Start(ctx context.Context) {
	s.once.Do(func() {
		s.setPhase(PhaseLoading)
		go s.load(ctx)
	})
}

// Wait blocks until the load started by Start is over and returns its error.
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Session) load(ctx context.Context) {
	defer close(s.done)

	ds, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.Error("dataset not loaded", zap.Error(err))

		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		return
	}
	v := newView(ds)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
	s.view = v
	s.phase = PhaseReady
	s.logger.Debug("session ready", zap.Int("records", ds.Len()))
}

func (s *Session) setPhase(p Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = p
}

func (s *Session) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *Session) Dataset() (temperature.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset, s.phase == PhaseReady
}

// Tooltip returns a copy of the current tooltip state.
func (s *Session) Tooltip() Tooltip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tooltip
}

// Enter marks the record drawn by the given cell as hovered.
func (s *Session) Enter(cell string, x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	i, ok := cellIndex(cell)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCell, cell)
	}
	r, ok := s.dataset.At(i)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCell, cell)
	}
	s.tooltip.Enter(r)
	s.tooltip.Move(x, y)
	return nil
}

func (s *Session) Move(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tooltip.Move(x, y)
}

func (s *Session) Leave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tooltip.Leave()
}

func (s *Session) RenderTooltip(w io.Writer) error {
	return s.Tooltip().Render(w)
}

// Render writes the interactive page, or the loading placeholder until the
// session is ready.
func (s *Session) Render(w io.Writer) error {
	return s.render(w, true)
}

// Export writes the chart alone as SVG or as a standalone HTML page.
func (s *Session) Export(w io.Writer, format string) error {
	if s.Phase() != PhaseReady {
		return ErrNotReady
	}
	switch format {
	case FormatSVG, "":
		return s.RenderChart(w)
	case FormatHTML:
		return s.render(w, false)
	default:
		return fmt.Errorf("%s: unsupported format", format)
	}
}

// RenderChart writes the chart as SVG.
func (s *Session) RenderChart(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	return s.view.Render(w)
}

func (s *Session) render(w io.Writer, interactive bool) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.phase != PhaseReady {
		return renderLoading(w)
	}
	return renderPage(w, s.view, s.tooltip, interactive)
}
