// Package render turns planned itineraries into HTML fragments written to a
// Target.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"strings"
	"voyage/internal/models/response_models"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	otherRegion = "Other"

	NoDestinationsMessage = "😕 No destinations found. Try different interests like 'beaches', 'food', 'hiking', or 'culture'."
	LoadingMessage        = "🌍 Planning your perfect trip..."
	DemoNotice            = "ℹ️ Our planning service is unreachable right now, so you are seeing demo data."
)

// Input is everything one render needs. It is not retained.
type Input struct {
	Itinerary        []response_models.ItineraryEntry
	MatchedInterests [][]string
	ActivityMap      response_models.ActivityInterestMap
	Days             int
	UserInput        string
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse fragments: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustNewRenderer panics when the embedded templates do not parse.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

type summaryView struct {
	Days          int
	Cities        int
	Activities    int
	RegionChanges int
	UserInput     string
}

type activityView struct {
	Text string
	Tags []string
}

type dayBlock struct {
	Label      string
	Activities []activityView
}

type cardView struct {
	RegionHeader  string
	DayRange      string
	Duration      string
	Score         int
	Tier          MatchTier
	Destination   string
	Country       string
	Description   string
	Explanation   string
	Interests     []string
	Blocks        []dayBlock
	ActivityCount int
	Suggestion    string
}

type messageView struct {
	Class string
	Text  string
}

// Render writes the summary, one card per destination and the tips block.
// An empty itinerary results in a single write of NoDestinationsMessage.
// Fragments are built before the first write, so a template failure leaves
// the target untouched.
func (r *Renderer) Render(target Target, in Input) error {
	if len(in.Itinerary) == 0 {
		return r.Message(target, "error", NoDestinationsMessage)
	}

	stops := groupStops(in.Itinerary)
	stats := ComputeStats(in.Itinerary)

	summary, err := r.execute("summary", summaryView{
		Days:          in.Days,
		Cities:        stats.Cities,
		Activities:    stats.Activities,
		RegionChanges: stats.RegionChanges,
		UserInput:     in.UserInput,
	})
	if err != nil {
		return err
	}

	cards := make([]template.HTML, 0, len(stops))
	currentDay := 1
	lastRegion := ""
	for _, s := range stops {
		view := r.cardFor(s, in, currentDay)
		currentDay += s.days()

		region := s.region()
		if region != lastRegion && region != otherRegion {
			view.RegionHeader = region
			lastRegion = region
		}

		card, err := r.execute("card", view)
		if err != nil {
			return err
		}
		cards = append(cards, card)
	}

	tips, err := r.execute("tips", struct{ DayDistribution string }{DayDistributionTip(in.Days)})
	if err != nil {
		return err
	}

	target.Replace(summary)
	for _, c := range cards {
		target.Append(c)
	}
	target.Append(tips)
	return nil
}

// Message replaces the target with a single status paragraph.
func (r *Renderer) Message(target Target, class, text string) error {
	frag, err := r.execute("message", messageView{Class: class, Text: text})
	if err != nil {
		return err
	}
	target.Replace(frag)
	return nil
}

// Notice appends an informational line below the current content.
func (r *Renderer) Notice(target Target, text string) error {
	frag, err := r.execute("notice", messageView{Text: text})
	if err != nil {
		return err
	}
	target.Append(frag)
	return nil
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) cardFor(s stop, in Input, startDay int) cardView {
	first := in.Itinerary[s.start]
	days := s.days()
	endDay := startDay + days - 1

	view := cardView{
		Destination: first.Destination,
		Country:     first.Country,
		Description: first.Description,
		Score:       s.score(),
		Interests:   interestsAt(in.MatchedInterests, s.start),
	}
	view.Tier = TierFor(view.Score)
	view.Explanation = Explain(first.Destination, first.Country, view.Interests, view.Score)

	if days == 1 {
		view.DayRange = fmt.Sprintf("Day %d", startDay)
		view.Duration = "1 day"
	} else {
		view.DayRange = fmt.Sprintf("Days %d-%d", startDay, endDay)
		view.Duration = fmt.Sprintf("%d days", days)
		view.Suggestion = s.suggestion()
	}

	for i := s.start; i < s.end; i++ {
		entry := in.Itinerary[i]
		tags := in.ActivityMap.For(i)

		block := dayBlock{}
		if s.end-s.start > 1 {
			block.Label = fmt.Sprintf("Day %d", startDay+i-s.start)
		}
		for _, activity := range entry.Activities {
			block.Activities = append(block.Activities, activityView{Text: activity, Tags: tags[activity]})
		}
		view.ActivityCount += len(entry.Activities)
		view.Blocks = append(view.Blocks, block)
	}

	return view
}

func interestsAt(matched [][]string, index int) []string {
	if index < 0 || index >= len(matched) {
		return nil
	}
	return matched[index]
}

// stop is a run of consecutive entries at one destination, [start, end).
type stop struct {
	entries []response_models.ItineraryEntry
	start   int
	end     int
}

func groupStops(itinerary []response_models.ItineraryEntry) []stop {
	var stops []stop
	for i := range itinerary {
		if i > 0 && itinerary[i].SameDestination(itinerary[i-1]) {
			stops[len(stops)-1].end = i + 1
			continue
		}
		stops = append(stops, stop{entries: itinerary, start: i, end: i + 1})
	}
	return stops
}

// days prefers the declared Days and falls back to the number of entries.
func (s stop) days() int {
	if d := s.entries[s.start].Days; d > 0 {
		return d
	}
	return s.end - s.start
}

func (s stop) region() string {
	if r := s.entries[s.start].Region; r != "" {
		return r
	}
	return otherRegion
}

func (s stop) score() int {
	total := 0
	for i := s.start; i < s.end; i++ {
		total += s.entries[i].Score
	}
	return int(math.Round(float64(total) / float64(s.end-s.start)))
}

func (s stop) suggestion() string {
	for i := s.start; i < s.end; i++ {
		if text := strings.TrimSpace(strings.ReplaceAll(s.entries[i].ItinerarySuggestion, "*", "")); text != "" {
			return text
		}
	}
	return ""
}
