package empathy

import "github.com/moodmate/moodmate-backend/internal/mood"

// Warning strings recorded when a lookup serves saved content. One
// fixed string per lookup; their presence is the only way callers can
// tell fallback content from live content.
const (
	warnMessage = "Served a saved supportive message while the writing assistant was unavailable."
	warnMusic   = "Served saved music recommendation while Spotify was unavailable."
	warnBook    = "Served a saved book recommendation while the book catalog was unavailable."
	warnQuote   = "Served a saved quote while the quote service was unavailable."
	warnPlace   = "Served a saved place suggestion while nearby search was unavailable."

	// warnPipeline covers the defensive catch-all around the whole
	// orchestration.
	warnPipeline = "Served saved recommendations while live services were unavailable."
)

// fallbackSets is the curated per-mood fallback table: one complete
// RecommendationSet per category, used as the floor for every
// individual lookup and for whole-pipeline failure. Copy is reviewed;
// preserve verbatim.
var fallbackSets = map[mood.Category]RecommendationSet{
	mood.Anxious: {
		EmpathyMessage: "It makes sense that things feel like a lot right now. Anxiety is your body trying to protect you, even when it overshoots. You don't have to fix everything at once.",
		Recommendation: Recommendation{
			Title:       "Box breathing",
			Description: "Breathe in for 4 counts, hold for 4, out for 4, hold for 4. Repeat for 3 minutes.",
			ActionLabel: "Start breathing",
			ActionType:  ActionBreathing,
		},
		Quote: Quote{
			Text:   "You don't have to control your thoughts. You just have to stop letting them control you.",
			Author: "Dan Millman",
		},
		Music: Music{
			Title:         "Weightless",
			Artist:        "Marconi Union",
			Reason:        "A slow ambient piece engineered to ease a racing mind.",
			SpotifyURL:    spotifySearchURL("Weightless", "Marconi Union"),
			AppleMusicURL: appleMusicSearchURL("Weightless", "Marconi Union"),
		},
		Book: Book{
			Title:     "The Anxiety and Phobia Workbook",
			Author:    "Edmund J. Bourne",
			Relevance: "Practical, step-by-step tools for calming an anxious nervous system.",
			AmazonURL: amazonSearchURL("The Anxiety and Phobia Workbook", "Edmund J. Bourne"),
		},
		Place: Place{
			Type:     "park",
			Reason:   "Green space helps your nervous system downshift.",
			Benefits: "Fresh air, soft focus, gentle movement",
		},
	},
	mood.Happy: {
		EmpathyMessage: "It sounds like things are genuinely good right now. Let yourself enjoy it fully — savoring a good moment is what makes it last.",
		Recommendation: Recommendation{
			Title:       "Savor the moment",
			Description: "Spend 5 minutes writing down three things that made today good while they're fresh.",
			ActionLabel: "Open journal",
			ActionType:  ActionJournal,
		},
		Quote: Quote{
			Text:   "Happiness is only real when shared.",
			Author: "Christopher McCandless",
		},
		Music: Music{
			Title:         "Good as Hell",
			Artist:        "Lizzo",
			Reason:        "A bright, brassy anthem to match your momentum.",
			SpotifyURL:    spotifySearchURL("Good as Hell", "Lizzo"),
			AppleMusicURL: appleMusicSearchURL("Good as Hell", "Lizzo"),
		},
		Book: Book{
			Title:     "The Book of Delights",
			Author:    "Ross Gay",
			Relevance: "Short essays on everyday joy that pair well with a good mood.",
			AmazonURL: amazonSearchURL("The Book of Delights", "Ross Gay"),
		},
		Place: Place{
			Type:     "cafe",
			Reason:   "A lively spot keeps good energy rolling.",
			Benefits: "Connection, people-watching, a favorite drink",
		},
	},
	mood.Sad: {
		EmpathyMessage: "I'm sorry today feels heavy. Sadness isn't a malfunction — it's part of how we process what matters. Be as kind to yourself as you would be to a friend.",
		Recommendation: Recommendation{
			Title:       "Reach out",
			Description: "Send one short message to someone who feels safe. You don't have to explain everything.",
			ActionLabel: "Contact someone",
			ActionType:  ActionContact,
		},
		Quote: Quote{
			Text:   "The wound is the place where the Light enters you.",
			Author: "Rumi",
		},
		Music: Music{
			Title:         "Holocene",
			Artist:        "Bon Iver",
			Reason:        "Gentle company for a heavy day, without forcing cheerfulness.",
			SpotifyURL:    spotifySearchURL("Holocene", "Bon Iver"),
			AppleMusicURL: appleMusicSearchURL("Holocene", "Bon Iver"),
		},
		Book: Book{
			Title:     "Reasons to Stay Alive",
			Author:    "Matt Haig",
			Relevance: "An honest, hopeful account of moving through dark stretches.",
			AmazonURL: amazonSearchURL("Reasons to Stay Alive", "Matt Haig"),
		},
		Place: Place{
			Type:     "library",
			Reason:   "Quiet, low-pressure spaces are kind to a low day.",
			Benefits: "Stillness, warmth, no one asking anything of you",
		},
	},
	mood.Tired: {
		EmpathyMessage: "Running on empty is your body asking for something, not a personal failing. Rest counts as doing something.",
		Recommendation: Recommendation{
			Title:       "Wind-down timer",
			Description: "Set a 20-minute timer, put the phone out of reach, and let your eyes close.",
			ActionLabel: "Start timer",
			ActionType:  ActionTimer,
		},
		Quote: Quote{
			Text:   "Almost everything will work again if you unplug it for a few minutes, including you.",
			Author: "Anne Lamott",
		},
		Music: Music{
			Title:         "Clair de Lune",
			Artist:        "Claude Debussy",
			Reason:        "Soft piano that asks nothing of you.",
			SpotifyURL:    spotifySearchURL("Clair de Lune", "Claude Debussy"),
			AppleMusicURL: appleMusicSearchURL("Clair de Lune", "Claude Debussy"),
		},
		Book: Book{
			Title:     "Why We Sleep",
			Author:    "Matthew Walker",
			Relevance: "A convincing case for giving your body the rest it's asking for.",
			AmazonURL: amazonSearchURL("Why We Sleep", "Matthew Walker"),
		},
		Place: Place{
			Type:     "garden",
			Reason:   "Slow, quiet surroundings help depleted reserves refill.",
			Benefits: "Soft light, fresh air, no hurry",
		},
	},
	mood.Stressed: {
		EmpathyMessage: "Carrying this much pressure is exhausting, and it's not because you're doing it wrong. Releasing one small valve can change the whole afternoon.",
		Recommendation: Recommendation{
			Title:       "Brain dump",
			Description: "Write every open loop onto one page for 5 minutes, then pick exactly one to handle.",
			ActionLabel: "Open journal",
			ActionType:  ActionJournal,
		},
		Quote: Quote{
			Text:   "You can't calm the storm, so stop trying. What you can do is calm yourself. The storm will pass.",
			Author: "Timber Hawkeye",
		},
		Music: Music{
			Title:         "Breathe",
			Artist:        "Télépopmusik",
			Reason:        "A downtempo reset for a wound-up afternoon.",
			SpotifyURL:    spotifySearchURL("Breathe", "Télépopmusik"),
			AppleMusicURL: appleMusicSearchURL("Breathe", "Télépopmusik"),
		},
		Book: Book{
			Title:     "Burnout",
			Author:    "Emily Nagoski and Amelia Nagoski",
			Relevance: "Explains why stress sticks around and how to complete the cycle.",
			AmazonURL: amazonSearchURL("Burnout", "Emily Nagoski"),
		},
		Place: Place{
			Type:     "trail",
			Reason:   "Brisk walking burns off stress hormones faster than sitting with them.",
			Benefits: "Movement, rhythm, a change of scenery",
		},
	},
	mood.Excited: {
		EmpathyMessage: "That spark is worth taking seriously. Excitement is energy looking for a direction — point it at something before the day dilutes it.",
		Recommendation: Recommendation{
			Title:       "Capture the spark",
			Description: "Spend 10 minutes writing down exactly what you want to do with this energy.",
			ActionLabel: "Open journal",
			ActionType:  ActionJournal,
		},
		Quote: Quote{
			Text:   "The future belongs to those who believe in the beauty of their dreams.",
			Author: "Eleanor Roosevelt",
		},
		Music: Music{
			Title:         "Dog Days Are Over",
			Artist:        "Florence + The Machine",
			Reason:        "Big, galloping energy to run alongside yours.",
			SpotifyURL:    spotifySearchURL("Dog Days Are Over", "Florence + The Machine"),
			AppleMusicURL: appleMusicSearchURL("Dog Days Are Over", "Florence + The Machine"),
		},
		Book: Book{
			Title:     "Big Magic",
			Author:    "Elizabeth Gilbert",
			Relevance: "Fuel for acting on creative momentum while it's hot.",
			AmazonURL: amazonSearchURL("Big Magic", "Elizabeth Gilbert"),
		},
		Place: Place{
			Type:     "plaza",
			Reason:   "Busy public spaces amplify an up mood.",
			Benefits: "Buzz, spontaneity, room to wander",
		},
	},
}

// fallbackFor returns the curated fallback set for a category.
func fallbackFor(c mood.Category) RecommendationSet {
	if set, ok := fallbackSets[c]; ok {
		return set
	}
	return fallbackSets[mood.DefaultCategory]
}
