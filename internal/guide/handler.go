package guide

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/2beens/fitguide/internal/assets"
	"github.com/2beens/fitguide/internal/cache"
	"github.com/2beens/fitguide/internal/catalog"
	"github.com/2beens/fitguide/internal/telemetry/metrics"
	"github.com/2beens/fitguide/internal/telemetry/tracing"
	"github.com/2beens/fitguide/internal/views"
	"github.com/2beens/fitguide/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var Screen = struct {
	Home   string
	List   string
	Detail string
}{
	Home:   "home",
	List:   "list",
	Detail: "detail",
}

// ImageStore resolves an image reference to a file path.
//
//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=guide
type ImageStore interface {
	Get(ctx context.Context, name string) (string, error)
}

type Handler struct {
	catalog        *catalog.Catalog
	renderer       *views.Renderer
	images         ImageStore // nil when no images dir is configured
	pageCache      cache.Cache
	metricsManager *metrics.Manager
}

func NewHandler(
	c *catalog.Catalog,
	renderer *views.Renderer,
	images ImageStore,
	pageCache cache.Cache,
	metricsManager *metrics.Manager,
) *Handler {
	if pageCache == nil {
		pageCache = cache.NoopCache{}
	}
	return &Handler{
		catalog:        c,
		renderer:       renderer,
		images:         images,
		pageCache:      pageCache,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/", handler.handleHome).Methods("GET").Name("home")
	r.HandleFunc("/featured", handler.handleFeatured).Methods("GET").Name("featured")
	r.HandleFunc("/days/{id}", handler.handleDay).Methods("GET").Name("day")
	r.HandleFunc("/exercises/{id}", handler.handleExercise).Methods("GET").Name("exercise")
	r.HandleFunc("/images/{name}", handler.handleImage).Methods("GET").Name("image")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/catalog", handler.handleApiCatalog).Methods("GET", "OPTIONS").Name("api-catalog")
	api.HandleFunc("/days/{id}", handler.handleApiDay).Methods("GET", "OPTIONS").Name("api-day")
	api.HandleFunc("/exercises/{id}", handler.handleApiExercise).Methods("GET", "OPTIONS").Name("api-exercise")
}

// links used by the rendered pages; they must match SetupRoutes

func (handler *Handler) FeaturedURL() string {
	return "/featured"
}

func (handler *Handler) DayURL(dayID string) string {
	return "/days/" + url.PathEscape(dayID)
}

func (handler *Handler) ExerciseURL(exerciseID string) string {
	return "/exercises/" + url.PathEscape(exerciseID)
}

func (handler *Handler) ImageURL(name string) string {
	return "/images/" + url.PathEscape(name)
}

func (handler *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.guide.home")
	defer span.End()

	handler.servePage(w, r, Screen.Home, func(out io.Writer) error {
		return handler.renderer.Home(out, views.NewHomePage(handler.catalog, handler))
	})
}

func (handler *Handler) handleFeatured(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.guide.featured")
	defer span.End()

	featured, ok := handler.catalog.Featured()
	if !ok {
		http.Error(w, "no featured workout", http.StatusNotFound)
		return
	}
	span.SetAttributes(attribute.String("day.label", featured.Day))

	handler.servePage(w, r, Screen.List, func(out io.Writer) error {
		return handler.renderer.List(out, views.NewListPage(featured.Title, featured.Exercises, handler))
	})
}

func (handler *Handler) handleDay(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.guide.day")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("day.id", id))

	day, err := handler.catalog.Day(id)
	if err != nil {
		log.Tracef("get day: %s", err)
		http.Error(w, "workout day not found", http.StatusNotFound)
		return
	}

	handler.servePage(w, r, Screen.List, func(out io.Writer) error {
		return handler.renderer.List(out, views.NewListPage(day.Day, day.Exercises, handler))
	})
}

func (handler *Handler) handleExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.guide.exercise")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("exercise.id", id))

	exercise, _, err := handler.catalog.Exercise(id)
	if err != nil {
		log.Tracef("get exercise: %s", err)
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}

	page, err := views.NewDetailPage(exercise)
	if err != nil {
		// the page still renders, with the fallback text instead of the video
		log.Warnf("exercise [%s]: %s", exercise.Name, err)
		span.SetAttributes(attribute.Bool("video.unavailable", true))
		if handler.metricsManager != nil {
			handler.metricsManager.CounterVideoUnavailable.Inc()
		}
	}

	handler.servePage(w, r, Screen.Detail, func(out io.Writer) error {
		return handler.renderer.Detail(out, page)
	})
}

func (handler *Handler) handleImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.guide.image")
	defer span.End()

	name := mux.Vars(r)["name"]
	if err := assets.ValidateName(name); err != nil {
		http.Error(w, "invalid image name", http.StatusBadRequest)
		return
	}

	if handler.images != nil {
		path, err := handler.images.Get(ctx, name)
		if err == nil {
			http.ServeFile(w, r, path)
			return
		}
		if !errors.Is(err, assets.ErrImageNotFound) {
			log.Errorf("get image [%s]: %s", name, err)
		}
	}

	log.Tracef("image [%s] not found, serving placeholder", name)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.SVG, assets.Placeholder(name))
}

func (handler *Handler) handleApiCatalog(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.guide.api.catalog")
	defer span.End()

	handler.writeJSON(w, handler.catalog.Days())
}

func (handler *Handler) handleApiDay(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.guide.api.day")
	defer span.End()

	day, err := handler.catalog.Day(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "workout day not found", http.StatusNotFound)
		return
	}

	handler.writeJSON(w, day)
}

type exerciseResponse struct {
	catalog.Exercise
	Day   string `json:"day"`
	DayID string `json:"dayId"`
}

func (handler *Handler) handleApiExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.guide.api.exercise")
	defer span.End()

	exercise, day, err := handler.catalog.Exercise(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}

	handler.writeJSON(w, exerciseResponse{
		Exercise: exercise,
		Day:      day.Day,
		DayID:    day.ID,
	})
}

// servePage writes the cached page for the request path, rendering and
// caching it first when needed.
func (handler *Handler) servePage(w http.ResponseWriter, r *http.Request, screen string, render func(out io.Writer) error) {
	key := r.URL.Path

	page, ok := handler.pageCache.Get(key)
	if ok {
		handler.countCache(true)
	} else {
		handler.countCache(false)

		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			log.Errorf("render %s page [%s]: %s", screen, key, err)
			http.Error(w, "render page failed", http.StatusInternalServerError)
			return
		}
		page = buf.Bytes()
		handler.pageCache.Set(key, page)
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterPageViews.WithLabelValues(screen).Inc()
	}
	pkg.WriteHTMLResponseOK(w, page)
}

func (handler *Handler) countCache(hit bool) {
	if handler.metricsManager == nil {
		return
	}
	if hit {
		handler.metricsManager.CounterPageCacheHits.Inc()
	} else {
		handler.metricsManager.CounterPageCacheMisses.Inc()
	}
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal json response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
