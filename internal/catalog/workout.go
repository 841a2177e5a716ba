package catalog

// Exercise is a single movement with its target volume and instructions.
type Exercise struct {
	ID       string   `json:"id" toml:"id" yaml:"id"`
	Name     string   `json:"name" toml:"name" yaml:"name"`
	Image    string   `json:"image" toml:"image" yaml:"image"`
	Sets     int      `json:"sets" toml:"sets" yaml:"sets"`
	Reps     int      `json:"reps" toml:"reps" yaml:"reps"`
	Steps    []string `json:"steps" toml:"steps" yaml:"steps"`
	VideoURL string   `json:"videoUrl" toml:"video_url" yaml:"video_url"`
}

// WorkoutDay groups the exercises planned for one day of the week.
// Title and Subtitle are only shown when the day is the featured card.
type WorkoutDay struct {
	ID        string     `json:"id" toml:"id" yaml:"id"`
	Day       string     `json:"day" toml:"day" yaml:"day"`
	Category  string     `json:"category" toml:"category" yaml:"category"`
	Image     string     `json:"image" toml:"image" yaml:"image"`
	Featured  bool       `json:"featured" toml:"featured" yaml:"featured"`
	Title     string     `json:"title,omitempty" toml:"title" yaml:"title"`
	Subtitle  string     `json:"subtitle,omitempty" toml:"subtitle" yaml:"subtitle"`
	Exercises []Exercise `json:"exercises" toml:"exercises" yaml:"exercises"`
}

func (e Exercise) clone() Exercise {
	e.Steps = append([]string(nil), e.Steps...)
	return e
}

func (d WorkoutDay) clone() WorkoutDay {
	exercises := make([]Exercise, len(d.Exercises))
	for i := range d.Exercises {
		exercises[i] = d.Exercises[i].clone()
	}
	d.Exercises = exercises
	return d
}
