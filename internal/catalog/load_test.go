package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogToml = `
[[days]]
day = "Monday"
category = "Chest"
image = "chest"

  [[days.exercises]]
  name = "Bench Press"
  image = "benchpress"
  sets = 3
  reps = 10
  steps = ["Lie down.", "Press."]
  video_url = "https://www.youtube.com/embed/gRVjAtPip0Y"

[[days]]
day = "Full Body"
category = "Beginner Full Body"
image = "fullbody"
subtitle = "For Beginners"

  [[days.exercises]]
  name = "Jumping Jacks"
  image = "jumpingjacks"
  sets = 3
  reps = 30
  steps = ["Jump."]
  video_url = "https://www.youtube.com/embed/lWMw6uppiFc"
`

const testCatalogYaml = `
days:
  - day: Monday
    category: Chest
    image: chest
    exercises:
      - name: Bench Press
        image: benchpress
        sets: 3
        reps: 10
        steps: ["Lie down.", "Press."]
        video_url: https://www.youtube.com/embed/gRVjAtPip0Y
  - day: Full Body
    category: Beginner Full Body
    image: fullbody
    subtitle: For Beginners
    exercises:
      - name: Jumping Jacks
        image: jumpingjacks
        sets: 3
        reps: 30
        steps: ["Jump."]
        video_url: https://www.youtube.com/embed/lWMw6uppiFc
`

const testCatalogJson = `{
  "days": [
    {"day": "Monday", "category": "Chest", "image": "chest", "exercises": [
      {"name": "Bench Press", "image": "benchpress", "sets": 3, "reps": 10,
       "steps": ["Lie down.", "Press."], "videoUrl": "https://www.youtube.com/embed/gRVjAtPip0Y"}
    ]},
    {"day": "Full Body", "category": "Beginner Full Body", "image": "fullbody", "subtitle": "For Beginners", "exercises": [
      {"name": "Jumping Jacks", "image": "jumpingjacks", "sets": 3, "reps": 30,
       "steps": ["Jump."], "videoUrl": "https://www.youtube.com/embed/lWMw6uppiFc"}
    ]}
  ]
}`

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	for fileName, content := range map[string]string{
		"catalog.toml": testCatalogToml,
		"catalog.yaml": testCatalogYaml,
		"catalog.yml":  testCatalogYaml,
		"catalog.json": testCatalogJson,
	} {
		t.Run(fileName, func(t *testing.T) {
			path := filepath.Join(dir, fileName)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			c, err := Load(path)
			require.NoError(t, err)

			days := c.Days()
			require.Len(t, days, 2)
			assert.Equal(t, "Monday", days[0].Day)
			require.Len(t, days[0].Exercises, 1)
			bench := days[0].Exercises[0]
			assert.Equal(t, "Bench Press", bench.Name)
			assert.Equal(t, 3, bench.Sets)
			assert.Equal(t, 10, bench.Reps)
			assert.Equal(t, []string{"Lie down.", "Press."}, bench.Steps)
			assert.Equal(t, "https://www.youtube.com/embed/gRVjAtPip0Y", bench.VideoURL)

			featured, ok := c.Featured()
			require.True(t, ok)
			assert.Equal(t, "Full Body", featured.Day)
			assert.Equal(t, "Full Body Workout", featured.Title)
			assert.Equal(t, "For Beginners", featured.Subtitle)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "catalog.xml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"days": []}`), 0o600))
	_, err = Load(empty)
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("days: [:"), 0o600))
	_, err = Load(broken)
	assert.Error(t, err)
}

func TestDecode_UnknownFormat(t *testing.T) {
	_, err := Decode([]byte("{}"), "xml")
	assert.Error(t, err)
}
