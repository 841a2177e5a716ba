package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/2beens/fitguide/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exerciseHrefRe = regexp.MustCompile(`href="(/exercises/[^"]+)"`)

func (s *IntegrationTestSuite) get(ctx context.Context, path string) (int, http.Header, string) {
	t := s.T()

	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s%s", serverEndpoint, path), nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, resp.Header, string(respBytes)
}

func (s *IntegrationTestSuite) TestHomeToFeatured() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, _, home := s.get(ctx, "/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, home, "Full Body Workout")
	assert.Contains(t, home, "For Everyone")
	assert.Contains(t, home, `href="/featured"`)
	// the featured day is not repeated in the weekly plan
	assert.Equal(t, 1, strings.Count(home, `class="card day-card"`))

	status, _, featured := s.get(ctx, "/featured")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, featured, "<title>Full Body Workout</title>")

	links := exerciseHrefRe.FindAllStringSubmatch(featured, -1)
	require.Len(t, links, 1)
	assert.Equal(t, "/exercises/"+catalog.ExerciseID("Full Body", "Burpee"), links[0][1])

	status, _, detail := s.get(ctx, links[0][1])
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, detail, "<title>Burpee</title>")
	assert.Contains(t, detail, `<iframe src="https://www.youtube.com/embed/dZgVxmf6jkA?playsinline=1"`)
}

func (s *IntegrationTestSuite) TestDayToDetail() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, _, list := s.get(ctx, "/days/"+catalog.DayID("Monday"))
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, list, "<title>Monday</title>")

	links := exerciseHrefRe.FindAllStringSubmatch(list, -1)
	require.Len(t, links, 2)

	// Squat has a malformed video url
	status, _, squat := s.get(ctx, links[0][1])
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, squat, "<title>Squat</title>")
	assert.Contains(t, squat, `<p class="video-unavailable">Video unavailable</p>`)
	assert.NotContains(t, squat, "<iframe")
	assert.Contains(t, squat, `<span class="sets-value">5</span>`)
	assert.Equal(t, 3, strings.Count(squat, `<span class="bullet">•</span>`))

	status, _, lunge := s.get(ctx, links[1][1])
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, lunge, `<iframe src="https://www.youtube.com/embed/QOVaHwm-Q6U?playsinline=1"`)

	status, _, _ = s.get(ctx, "/days/"+catalog.DayID("Sunday"))
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestApi() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, header, body := s.get(ctx, "/api/catalog")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", header.Get("Content-Type"))

	var days []catalog.WorkoutDay
	require.NoError(t, json.Unmarshal([]byte(body), &days))
	require.Len(t, days, 2)
	assert.False(t, days[0].Featured)
	assert.True(t, days[1].Featured)
	assert.Equal(t, "Full Body Workout", days[1].Title)

	status, _, body = s.get(ctx, "/api/exercises/"+days[0].Exercises[1].ID)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"name":"Lunge"`)
	assert.Contains(t, body, `"dayId":"`+days[0].ID+`"`)
}

func (s *IntegrationTestSuite) TestImages() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, _, body := s.get(ctx, "/images/squat")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "squat-png", body)

	status, header, body := s.get(ctx, "/images/lunge")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "image/svg+xml", header.Get("Content-Type"))
	assert.Contains(t, body, ">lunge</text>")
}
