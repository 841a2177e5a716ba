package catalog

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fakeDays(t *testing.T, count, exercisesPerDay int) []WorkoutDay {
	t.Helper()

	days := make([]WorkoutDay, 0, count)
	for i := 0; i < count; i++ {
		day := WorkoutDay{
			Day:      fmt.Sprintf("%s-%d", gofakeit.Word(), i),
			Category: gofakeit.Word(),
			Image:    gofakeit.Word(),
		}
		for j := 0; j < exercisesPerDay; j++ {
			day.Exercises = append(day.Exercises, Exercise{
				Name:     fmt.Sprintf("%s %d", gofakeit.Word(), j),
				Image:    gofakeit.Word(),
				Sets:     gofakeit.Number(1, 5),
				Reps:     gofakeit.Number(1, 30),
				Steps:    []string{gofakeit.Sentence(6), gofakeit.Sentence(8)},
				VideoURL: gofakeit.URL(),
			})
		}
		days = append(days, day)
	}
	return days
}

func TestDefault_LabelsUnique(t *testing.T) {
	c := Default()
	seen := map[string]bool{}
	for _, d := range c.Days() {
		assert.False(t, seen[d.Day], "duplicate label %s", d.Day)
		seen[d.Day] = true
	}
	assert.Len(t, c.Days(), 6)
}

func TestDefault_SetsAndRepsPositive(t *testing.T) {
	for _, d := range Default().Days() {
		for _, ex := range d.Exercises {
			assert.Greater(t, ex.Sets, 0, ex.Name)
			assert.Greater(t, ex.Reps, 0, ex.Name)
		}
	}
}

func TestDefault_Featured(t *testing.T) {
	c := Default()

	featured, ok := c.Featured()
	require.True(t, ok)
	assert.Equal(t, "Full Body", featured.Day)
	assert.Equal(t, "Full Body Workout", featured.Title)
	assert.Equal(t, "For Beginners", featured.Subtitle)

	fullBody, err := c.DayByLabel("Full Body")
	require.NoError(t, err)
	assert.Equal(t, fullBody.Exercises, featured.Exercises)
	require.Len(t, featured.Exercises, 4)
	assert.Equal(t, "Jumping Jacks", featured.Exercises[0].Name)
	assert.Equal(t, "Dynamic Stretching", featured.Exercises[3].Name)

	others := c.Others()
	require.Len(t, others, 5)
	var labels []string
	for _, d := range others {
		assert.False(t, d.Featured)
		labels = append(labels, d.Day)
	}
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, labels)
}

func TestDefault_Monday(t *testing.T) {
	monday, err := Default().DayByLabel("Monday")
	require.NoError(t, err)
	assert.Equal(t, "Chest", monday.Category)

	var names []string
	for _, ex := range monday.Exercises {
		names = append(names, ex.Name)
	}
	assert.Equal(t, []string{"Bench Press", "Push-Up", "Dumbbell Fly"}, names)

	bench := monday.Exercises[0]
	assert.Equal(t, 3, bench.Sets)
	assert.Equal(t, 10, bench.Reps)
	assert.Len(t, bench.Steps, 5)
	assert.Equal(t, "Lie flat on your back on a bench.", bench.Steps[0])
	assert.Equal(t, "https://www.youtube.com/embed/gRVjAtPip0Y", bench.VideoURL)
}

func TestCatalog_Lookups(t *testing.T) {
	c := Default()

	monday, err := c.DayByLabel("Monday")
	require.NoError(t, err)
	assert.Equal(t, DayID("Monday"), monday.ID)

	byID, err := c.Day(monday.ID)
	require.NoError(t, err)
	assert.Equal(t, monday, byID)

	ex, day, err := c.Exercise(ExerciseID("Monday", "Push-Up"))
	require.NoError(t, err)
	assert.Equal(t, "Push-Up", ex.Name)
	assert.Equal(t, "Monday", day.Day)

	_, err = c.Day("nope")
	assert.ErrorIs(t, err, ErrDayNotFound)
	_, err = c.DayByLabel("Sunday")
	assert.ErrorIs(t, err, ErrDayNotFound)
	_, _, err = c.Exercise("nope")
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	assert.Equal(t, 19, c.ExercisesCount())
}

func TestCatalog_IdsStable(t *testing.T) {
	a, err := New(DefaultDays())
	require.NoError(t, err)
	b, err := New(DefaultDays())
	require.NoError(t, err)
	assert.Equal(t, a.Days(), b.Days())
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := Default()
	days := c.Days()
	days[0].Day = "changed"
	days[0].Exercises[0].Steps[0] = "changed"

	monday, err := c.DayByLabel("Monday")
	require.NoError(t, err)
	assert.Equal(t, "Monday", monday.Day)
	assert.Equal(t, "Lie flat on your back on a bench.", monday.Exercises[0].Steps[0])
}

func TestNew_SubstituteCatalog(t *testing.T) {
	days := fakeDays(t, 4, 3)
	days[2].Featured = true

	c, err := New(days)
	require.NoError(t, err)

	featured, ok := c.Featured()
	require.True(t, ok)
	assert.Equal(t, days[2].Day, featured.Day)
	assert.Equal(t, days[2].Day+" Workout", featured.Title)

	others := c.Others()
	require.Len(t, others, 3)
	assert.Equal(t, days[0].Day, others[0].Day)
	assert.Equal(t, days[1].Day, others[1].Day)
	assert.Equal(t, days[3].Day, others[2].Day)
	assert.Equal(t, 12, c.ExercisesCount())
}

func TestNew_LegacyFeaturedLabel(t *testing.T) {
	days := fakeDays(t, 3, 1)
	days[1].Day = FeaturedLabel

	c, err := New(days)
	require.NoError(t, err)
	featured, ok := c.Featured()
	require.True(t, ok)
	assert.Equal(t, FeaturedLabel, featured.Day)
	assert.True(t, featured.Featured)
	assert.Len(t, c.Others(), 2)
}

func TestNew_NoFeatured(t *testing.T) {
	c, err := New(fakeDays(t, 3, 1))
	require.NoError(t, err)
	_, ok := c.Featured()
	assert.False(t, ok)
	assert.Len(t, c.Others(), 3)
}

func TestNew_Invalid(t *testing.T) {
	for name, mutate := range map[string]func(days []WorkoutDay){
		"duplicate label": func(days []WorkoutDay) {
			days[1].Day = days[0].Day
		},
		"empty label": func(days []WorkoutDay) {
			days[0].Day = "  "
		},
		"duplicate day id": func(days []WorkoutDay) {
			days[0].ID = "same"
			days[1].ID = "same"
		},
		"two featured": func(days []WorkoutDay) {
			days[0].Featured = true
			days[1].Featured = true
		},
		"zero sets": func(days []WorkoutDay) {
			days[1].Exercises[0].Sets = 0
		},
		"negative reps": func(days []WorkoutDay) {
			days[1].Exercises[1].Reps = -1
		},
		"no exercise name": func(days []WorkoutDay) {
			days[0].Exercises[0].Name = ""
		},
		"duplicate exercise id": func(days []WorkoutDay) {
			days[0].Exercises[0].ID = "ex"
			days[1].Exercises[0].ID = "ex"
		},
	} {
		t.Run(name, func(t *testing.T) {
			days := fakeDays(t, 2, 2)
			mutate(days)
			c, err := New(days)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestNew_RepeatedExerciseName(t *testing.T) {
	c, err := New([]WorkoutDay{
		{
			Day: "Monday",
			Exercises: []Exercise{
				{Name: "Squat", Sets: 5, Reps: 5},
				{Name: "Lunge", Sets: 3, Reps: 8},
				{Name: "Squat", Sets: 3, Reps: 12},
			},
		},
	})
	require.NoError(t, err)

	monday, err := c.DayByLabel("Monday")
	require.NoError(t, err)
	require.Len(t, monday.Exercises, 3)

	first, second := monday.Exercises[0], monday.Exercises[2]
	assert.Equal(t, ExerciseID("Monday", "Squat"), first.ID)
	assert.Equal(t, ExerciseID("Monday", "Squat#2"), second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	ex, _, err := c.Exercise(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, ex.Reps)
	ex, _, err = c.Exercise(second.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, ex.Reps)

	// explicit ids are never rewritten
	_, err = New([]WorkoutDay{
		{
			Day: "Monday",
			Exercises: []Exercise{
				{ID: "squat", Name: "Squat", Sets: 5, Reps: 5},
				{ID: "squat", Name: "Squat", Sets: 3, Reps: 12},
			},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestNew_MalformedVideoURLAccepted(t *testing.T) {
	days := fakeDays(t, 1, 1)
	days[0].Exercises[0].VideoURL = "::not a url"
	_, err := New(days)
	assert.NoError(t, err)
}
