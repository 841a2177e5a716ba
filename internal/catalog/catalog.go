package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrDayNotFound      = errors.New("workout day not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidCatalog   = errors.New("invalid catalog")
)

// FeaturedLabel is the day label promoted to the featured card when no day
// in a catalog carries the Featured flag. Catalog files written before the
// flag existed rely on it.
const FeaturedLabel = "Full Body"

// namespace for the ids derived from labels; changing it changes every URL
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://fitguide/catalog"))

type exerciseRef struct {
	day      int
	exercise int
}

// Catalog is a fixed, ordered set of workout days. It is built once and
// never mutated, so it is safe to share between goroutines.
type Catalog struct {
	days        []WorkoutDay
	featured    int
	dayIndex    map[string]int
	labelIndex  map[string]int
	exerciseIdx map[string]exerciseRef
}

// New copies the given days, fills in missing ids and validates the result.
func New(days []WorkoutDay) (*Catalog, error) {
	c := &Catalog{
		days:        make([]WorkoutDay, 0, len(days)),
		featured:    -1,
		dayIndex:    make(map[string]int, len(days)),
		labelIndex:  make(map[string]int, len(days)),
		exerciseIdx: make(map[string]exerciseRef),
	}

	for i, d := range days {
		day := d.clone()
		day.Day = strings.TrimSpace(day.Day)
		if day.Day == "" {
			return nil, fmt.Errorf("%w: day #%d has an empty label", ErrInvalidCatalog, i)
		}
		if day.ID == "" {
			day.ID = DayID(day.Day)
		}

		if _, ok := c.labelIndex[day.Day]; ok {
			return nil, fmt.Errorf("%w: duplicate day label [%s]", ErrInvalidCatalog, day.Day)
		}
		if _, ok := c.dayIndex[day.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate day id [%s]", ErrInvalidCatalog, day.ID)
		}

		if day.Featured {
			if c.featured >= 0 {
				return nil, fmt.Errorf(
					"%w: days [%s] and [%s] are both featured",
					ErrInvalidCatalog, c.days[c.featured].Day, day.Day,
				)
			}
			c.featured = i
		}

		for j := range day.Exercises {
			ex := &day.Exercises[j]
			if strings.TrimSpace(ex.Name) == "" {
				return nil, fmt.Errorf("%w: exercise #%d of [%s] has no name", ErrInvalidCatalog, j, day.Day)
			}
			if ex.Sets <= 0 || ex.Reps <= 0 {
				return nil, fmt.Errorf(
					"%w: exercise [%s] of [%s] needs positive sets and reps, got %d x %d",
					ErrInvalidCatalog, ex.Name, day.Day, ex.Sets, ex.Reps,
				)
			}
			if ex.ID == "" {
				ex.ID = ExerciseID(day.Day, ex.Name)
				// same name repeated in a day: the later ones get their position
				if _, ok := c.exerciseIdx[ex.ID]; ok {
					ex.ID = ExerciseID(day.Day, fmt.Sprintf("%s#%d", ex.Name, j))
				}
			}
			if _, ok := c.exerciseIdx[ex.ID]; ok {
				return nil, fmt.Errorf("%w: duplicate exercise id [%s]", ErrInvalidCatalog, ex.ID)
			}
			c.exerciseIdx[ex.ID] = exerciseRef{day: i, exercise: j}
		}

		c.dayIndex[day.ID] = i
		c.labelIndex[day.Day] = i
		c.days = append(c.days, day)
	}

	if c.featured < 0 {
		if i, ok := c.labelIndex[FeaturedLabel]; ok {
			c.featured = i
			c.days[i].Featured = true
		}
	}
	if c.featured >= 0 {
		fd := &c.days[c.featured]
		if fd.Title == "" {
			fd.Title = fd.Day + " Workout"
		}
	}

	return c, nil
}

// DayID derives the stable id used for a day that has none.
func DayID(label string) string {
	return uuid.NewSHA1(idNamespace, []byte("day:"+label)).String()
}

// ExerciseID derives the stable id used for an exercise that has none.
func ExerciseID(dayLabel, name string) string {
	return uuid.NewSHA1(idNamespace, []byte("exercise:"+dayLabel+"/"+name)).String()
}

// Days returns every day in catalog order.
func (c *Catalog) Days() []WorkoutDay {
	days := make([]WorkoutDay, len(c.days))
	for i := range c.days {
		days[i] = c.days[i].clone()
	}
	return days
}

// Featured returns the day promoted to the home page card, if there is one.
func (c *Catalog) Featured() (WorkoutDay, bool) {
	if c.featured < 0 {
		return WorkoutDay{}, false
	}
	return c.days[c.featured].clone(), true
}

// Others returns all days except the featured one, in catalog order.
func (c *Catalog) Others() []WorkoutDay {
	others := make([]WorkoutDay, 0, len(c.days))
	for i := range c.days {
		if i == c.featured {
			continue
		}
		others = append(others, c.days[i].clone())
	}
	return others
}

func (c *Catalog) Day(id string) (WorkoutDay, error) {
	i, ok := c.dayIndex[id]
	if !ok {
		return WorkoutDay{}, fmt.Errorf("day [%s]: %w", id, ErrDayNotFound)
	}
	return c.days[i].clone(), nil
}

func (c *Catalog) DayByLabel(label string) (WorkoutDay, error) {
	i, ok := c.labelIndex[label]
	if !ok {
		return WorkoutDay{}, fmt.Errorf("day labelled [%s]: %w", label, ErrDayNotFound)
	}
	return c.days[i].clone(), nil
}

// Exercise looks an exercise up by id and also returns the day it belongs to.
func (c *Catalog) Exercise(id string) (Exercise, WorkoutDay, error) {
	ref, ok := c.exerciseIdx[id]
	if !ok {
		return Exercise{}, WorkoutDay{}, fmt.Errorf("exercise [%s]: %w", id, ErrExerciseNotFound)
	}
	day := c.days[ref.day]
	return day.Exercises[ref.exercise].clone(), day.clone(), nil
}

// ExercisesCount returns the total number of exercises across all days.
func (c *Catalog) ExercisesCount() int {
	return len(c.exerciseIdx)
}
