package catalog

import (
	"fmt"
	"sync"
)

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in weekly plan.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(DefaultDays())
		if err != nil {
			// the literal below is fixed, a failure here is a programming error
			panic(fmt.Sprintf("default catalog: %s", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// DefaultDays returns a fresh copy of the built-in weekly plan records.
func DefaultDays() []WorkoutDay {
	return []WorkoutDay{
		{
			Day:      "Monday",
			Category: "Chest",
			Image:    "chest",
			Exercises: []Exercise{
				{
					Name:  "Bench Press",
					Image: "benchpress",
					Sets:  3,
					Reps:  10,
					Steps: []string{
						"Lie flat on your back on a bench.",
						"Grip the barbell slightly wider than shoulder-width apart.",
						"Lower the barbell to your chest, keeping your elbows at a 45-degree angle.",
						"Press the barbell upward until your arms are fully extended.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/gRVjAtPip0Y",
				},
				{
					Name:  "Push-Up",
					Image: "pushups",
					Sets:  3,
					Reps:  12,
					Steps: []string{
						"Start in a plank position with your hands directly under your shoulders.",
						"Lower your chest toward the floor, keeping your elbows close to your body.",
						"Push back up to the starting position.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/IODxDxX7oi4",
				},
				{
					Name:  "Dumbbell Fly",
					Image: "dumbbellfly",
					Sets:  3,
					Reps:  12,
					Steps: []string{
						"Lie on a flat bench holding a dumbbell in each hand above your chest.",
						"Slowly lower the dumbbells in an arc until your arms are at chest level.",
						"Bring the dumbbells back to the starting position in the same arc motion.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/eozdVDA78K0",
				},
			},
		},
		{
			Day:      "Tuesday",
			Category: "Back",
			Image:    "back",
			Exercises: []Exercise{
				{
					Name:  "Pull-Up",
					Image: "pullup",
					Sets:  3,
					Reps:  8,
					Steps: []string{
						"Grab the pull-up bar with an overhand grip, slightly wider than shoulder-width.",
						"Hang with your arms fully extended.",
						"Pull yourself up until your chin is above the bar.",
						"Lower yourself back down to the starting position.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/eGo4IYlbE5g",
				},
				{
					Name:  "Deadlift",
					Image: "deadlift",
					Sets:  3,
					Reps:  10,
					Steps: []string{
						"Stand with your feet hip-width apart and the barbell in front of you.",
						"Hinge at your hips and bend your knees to grip the barbell.",
						"Engage your core and lift the barbell by straightening your hips and knees.",
						"Lower the barbell back to the ground in a controlled manner.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/r4MzxtBKyNE",
				},
				{
					Name:  "Rowing",
					Image: "rowing",
					Sets:  3,
					Reps:  12,
					Steps: []string{
						"Sit on the rowing machine and secure your feet on the footrests.",
						"Grab the handle with both hands and extend your legs fully.",
						"Pull the handle toward your chest while leaning slightly backward.",
						"Extend your arms and return to the starting position.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/UCXxvVItLoM",
				},
			},
		},
		{
			Day:      "Wednesday",
			Category: "Arms",
			Image:    "arms",
			Exercises: []Exercise{
				{
					Name:  "Bicep Curl",
					Image: "bicepcurl",
					Sets:  3,
					Reps:  12,
					Steps: []string{
						"Stand with your feet shoulder-width apart, holding a dumbbell in each hand.",
						"Keep your elbows close to your torso and palms facing forward.",
						"Curl the dumbbells up to shoulder level.",
						"Lower the dumbbells back to the starting position in a controlled manner.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/in7PaeYlhrM",
				},
				{
					Name:  "Tricep Pushdown",
					Image: "tricep",
					Sets:  3,
					Reps:  12,
					Steps: []string{
						"Stand facing the cable machine with a rope or bar attachment.",
						"Grip the attachment with your palms facing downward.",
						"Push the attachment downward until your arms are fully extended.",
						"Slowly return to the starting position.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/6Fzep104f0s",
				},
				{
					Name:  "Hammer Curl",
					Image: "hammercurl",
					Sets:  3,
					Reps:  12,
					Steps: []string{
						"Hold a dumbbell in each hand with your palms facing inward.",
						"Keep your elbows close to your torso.",
						"Curl the dumbbells up to shoulder level.",
						"Lower the dumbbells back to the starting position in a controlled manner.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/zC3nLlEvin4",
				},
			},
		},
		{
			Day:      "Thursday",
			Category: "Legs",
			Image:    "legs",
			Exercises: []Exercise{
				{
					Name:  "Squat",
					Image: "squat",
					Sets:  3,
					Reps:  12,
					Steps: []string{
						"Stand with your feet shoulder-width apart.",
						"Lower your body by bending your knees and pushing your hips back.",
						"Keep your chest up and your knees aligned with your toes.",
						"Return to the starting position by pushing through your heels.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/aclHkVaku9U",
				},
				{
					Name:  "Hamstring Curl",
					Image: "hamstringcurl",
					Sets:  3,
					Reps:  12,
					Steps: []string{
						"Adjust the machine so the pads rest just above your ankles.",
						"Lie face down on the machine and grip the handles for support.",
						"Curl your legs upward as far as possible while keeping your hips on the pad.",
						"Lower the weight back to the starting position in a controlled motion.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/xdrPE8mB5AU",
				},
				{
					Name:  "Hip Thrust",
					Image: "hipthrust",
					Sets:  3,
					Reps:  12,
					Steps: []string{
						"Sit on the ground with your upper back resting on a bench and your feet flat on the floor.",
						"Place a barbell or weight across your hips.",
						"Drive through your heels to lift your hips upward until your torso is in line with your thighs.",
						"Squeeze your glutes at the top, then slowly lower your hips back to the ground.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/gRVjAtPip0Y",
				},
			},
		},
		{
			Day:      "Friday",
			Category: "Abs",
			Image:    "abs",
			Exercises: []Exercise{
				{
					Name:  "Crunches",
					Image: "crunch",
					Sets:  3,
					Reps:  15,
					Steps: []string{
						"Lie on your back with your knees bent and feet flat on the floor.",
						"Place your hands behind your head without pulling on your neck.",
						"Lift your upper body toward your knees, engaging your core.",
						"Lower your upper body back to the starting position.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/Xyd_fa5zoEU",
				},
				{
					Name:  "Plank",
					Image: "plank",
					Sets:  3,
					Reps:  30,
					Steps: []string{
						"Start in a push-up position with your elbows under your shoulders.",
						"Keep your body in a straight line from head to heels.",
						"Hold this position for the recommended time.",
						"Lower your body and rest before the next set.",
					},
					VideoURL: "https://www.youtube.com/embed/Fcbw82ykBvY",
				},
				{
					Name:  "Russian Twist",
					Image: "russiantwist",
					Sets:  3,
					Reps:  20,
					Steps: []string{
						"Sit on the ground with your knees bent and feet slightly elevated.",
						"Hold a weight or medicine ball with both hands.",
						"Twist your torso to the right, then to the left.",
						"Repeat for the recommended number of reps.",
					},
					VideoURL: "https://www.youtube.com/embed/9Vt2UQz1jRg",
				},
			},
		},
		{
			Day:      "Full Body",
			Category: "Beginner Full Body",
			Image:    "fullbody",
			Featured: true,
			Title:    "Full Body Workout",
			Subtitle: "For Beginners",
			Exercises: []Exercise{
				{
					Name:  "Jumping Jacks",
					Image: "jumpingjacks",
					Sets:  3,
					Reps:  30,
					Steps: []string{
						"Stand upright with your legs together and arms by your side.",
						"Jump up, spreading your legs shoulder-width apart and raising your arms overhead.",
						"Return to the starting position and repeat.",
					},
					VideoURL: "https://www.youtube.com/embed/lWMw6uppiFc",
				},
				{
					Name:  "High Knees",
					Image: "highknees",
					Sets:  3,
					Reps:  30,
					Steps: []string{
						"Stand in place with your feet hip-width apart.",
						"Lift one knee toward your chest while driving the opposite arm upward.",
						"Switch legs quickly, as if running in place.",
					},
					VideoURL: "https://www.youtube.com/embed/IdIlyOKozx4",
				},
				{
					Name:  "Mountain Climbers",
					Image: "mountainclimbers",
					Sets:  3,
					Reps:  20,
					Steps: []string{
						"Start in a plank position with your arms straight and your hands under your shoulders.",
						"Drive one knee toward your chest while keeping the other leg extended.",
						"Quickly switch legs in a running motion.",
					},
					VideoURL: "https://www.youtube.com/embed/nmwgirgXLYM",
				},
				{
					Name:  "Dynamic Stretching",
					Image: "dynamicstretch",
					Sets:  1,
					Reps:  10,
					Steps: []string{
						"Perform arm circles, leg swings, and hip openers for 1-2 minutes.",
						"Focus on smooth and controlled movements to loosen your joints.",
					},
					VideoURL: "https://www.youtube.com/embed/AEgDzAN71PU",
				},
			},
		},
	}
}
