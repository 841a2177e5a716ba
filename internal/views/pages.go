package views

import (
	"github.com/2beens/fitguide/internal/catalog"
	"github.com/2beens/fitguide/internal/video"
)

const (
	HomeTitle        = "Home"
	WeeklyPlanTitle  = "Weekly Plan"
	VideoUnavailable = "Video unavailable"
	StepBullet       = "•"
)

// Links builds the URLs the pages point to; kept here so the handlers and
// the templates agree on the paths.
type Links interface {
	FeaturedURL() string
	DayURL(dayID string) string
	ExerciseURL(exerciseID string) string
	ImageURL(name string) string
}

type Card struct {
	Title    string
	Subtitle string
	ImageURL string
	Href     string
}

type HomePage struct {
	Title      string
	Featured   *Card
	PlanTitle  string
	WeeklyPlan []Card
}

type ListRow struct {
	Name     string
	ImageURL string
	Href     string
}

type ListPage struct {
	Title string
	Rows  []ListRow
}

type DetailPage struct {
	Title string
	// Video is nil when the exercise video URL could not be parsed.
	Video            *video.Embed
	VideoUnavailable string
	Name             string
	Sets             int
	Reps             int
	Steps            []string
	Bullet           string
}

func NewHomePage(c *catalog.Catalog, links Links) HomePage {
	page := HomePage{
		Title:     HomeTitle,
		PlanTitle: WeeklyPlanTitle,
	}

	if featured, ok := c.Featured(); ok {
		page.Featured = &Card{
			Title:    featured.Title,
			Subtitle: featured.Subtitle,
			ImageURL: links.ImageURL(featured.Image),
			Href:     links.FeaturedURL(),
		}
	}

	for _, day := range c.Others() {
		page.WeeklyPlan = append(page.WeeklyPlan, Card{
			Title:    day.Day,
			Subtitle: day.Category,
			ImageURL: links.ImageURL(day.Image),
			Href:     links.DayURL(day.ID),
		})
	}

	return page
}

// NewListPage lists the exercises exactly in the given order.
func NewListPage(title string, exercises []catalog.Exercise, links Links) ListPage {
	page := ListPage{
		Title: title,
		Rows:  make([]ListRow, 0, len(exercises)),
	}
	for _, ex := range exercises {
		page.Rows = append(page.Rows, ListRow{
			Name:     ex.Name,
			ImageURL: links.ImageURL(ex.Image),
			Href:     links.ExerciseURL(ex.ID),
		})
	}
	return page
}

// NewDetailPage returns the page and the video parse error, if any. The page
// is usable either way; on error it carries the fallback text instead of a video.
func NewDetailPage(ex catalog.Exercise) (DetailPage, error) {
	page := DetailPage{
		Title:  ex.Name,
		Name:   ex.Name,
		Sets:   ex.Sets,
		Reps:   ex.Reps,
		Steps:  append([]string(nil), ex.Steps...),
		Bullet: StepBullet,
	}

	embed, err := video.Parse(ex.VideoURL)
	if err != nil {
		page.VideoUnavailable = VideoUnavailable
		return page, err
	}
	page.Video = &embed

	return page, nil
}
