package temperature

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// DefaultURL is the only location the dataset is fetched from.
const DefaultURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/global-temperature.json"

// ErrPayload is wrapped by load errors caused by a malformed document.
var ErrPayload = errors.New("malformed payload")

// LoadError reports a failed load of the dataset.
type LoadError struct {
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s", e.Location, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type document struct {
	BaseTemperature float64  `json:"baseTemperature"`
	MonthlyVariance []Record `json:"monthlyVariance" validate:"required,dive"`
}

var validate = validator.New()

// Loader fetches the dataset once per call to Load. It never retries.
type Loader struct {
	Location string
	Client   *http.Client
	Logger   *zap.Logger
	Metrics  *Metrics
}

func NewLoader(logger *zap.Logger, metrics *Metrics) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		Location: DefaultURL,
		Client:   http.DefaultClient,
		Logger:   logger.Named("loader"),
		Metrics:  metrics,
	}
}

func (l *Loader) Load(ctx context.Context) (Dataset, error) {
	var (
		now = time.Now()
		log = l.logger().With(zap.String("location", l.location()))
	)
	log.Debug("fetching dataset")

	ds, err := l.load(ctx)
	l.Metrics.observe(time.Since(now), len(ds.Records), err)
	if err != nil {
		return ds, &LoadError{
			Location: l.location(),
			Err:      err,
		}
	}
	log.Info("dataset loaded", zap.Int("records", ds.Len()), zap.Duration("elapsed", time.Since(now)))
	return ds, nil
}

func (l *Loader) load(ctx context.Context) (Dataset, error) {
	r, err := l.readFrom(ctx)
	if err != nil {
		return Dataset{}, err
	}
	defer r.Close()
	return Decode(r)
}

// Decode reads a dataset document and derives its records.
func Decode(r io.Reader) (Dataset, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Dataset{}, fmt.Errorf("%w: %s", ErrPayload, err)
	}
	if err := validate.Struct(doc); err != nil {
		return Dataset{}, fmt.Errorf("%w: %s", ErrPayload, err)
	}
	return Derive(doc.BaseTemperature, doc.MonthlyVariance), nil
}

func (l *Loader) readFrom(ctx context.Context) (io.ReadCloser, error) {
	u, err := url.Parse(l.location())
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		res, err := l.client().Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			res.Body.Close()
			return nil, fmt.Errorf("unexpected status code %d", res.StatusCode)
		}
		return res.Body, nil
	case "", "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}

func (l *Loader) location() string {
	if l.Location == "" {
		return DefaultURL
	}
	return l.Location
}

func (l *Loader) client() *http.Client {
	if l.Client == nil {
		return http.DefaultClient
	}
	return l.Client
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}
