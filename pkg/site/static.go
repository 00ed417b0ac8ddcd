package site

import (
	"context"

	"github.com/devcircle/hub/pkg/data"
)

// Static serves the hard-coded content that ships with the client. It backs
// --offline mode and seeds the cache on first sync.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Demos(context.Context) ([]data.Demo, error) {
	return []data.Demo{
		{
			Name:          "Wednesday mob session",
			Category:      data.CategoryLive,
			LiveDemoURL:   "https://devcircle.org/mob",
			SourceCodeURL: "https://github.com/devcircle/mob-sessions",
		},
		{
			Name:          "Collaborative editor playground",
			Category:      data.CategoryLive,
			LiveDemoURL:   "https://devcircle.org/playground",
			SourceCodeURL: "https://github.com/devcircle/playground",
		},
		{
			Name:          "Todo list walkthrough",
			Category:      data.CategoryExample,
			LiveDemoURL:   "https://devcircle.org/demos/todo",
			SourceCodeURL: "https://github.com/devcircle/todo-demo",
		},
		{
			Name:          "Weather dashboard",
			Category:      data.CategoryExample,
			LiveDemoURL:   "https://devcircle.org/demos/weather",
			SourceCodeURL: "https://github.com/devcircle/weather-demo",
		},
	}, nil
}

func (s *Static) Resources(context.Context) ([]data.Resource, error) {
	return []data.Resource{
		{Name: "The Go Programming Language", Category: data.CategoryBook, URL: "https://www.gopl.io"},
		{Name: "Learning Functional Programming", Category: data.CategoryBook, URL: "https://www.oreilly.com/library/view/learning-functional-programming/9781098111748/"},
		{Name: "A Tour of Go", Category: data.CategoryCourse, URL: "https://go.dev/tour/"},
		{Name: "Exercism", Category: data.CategoryCourse, URL: "https://exercism.org"},
		{Name: "Gophers Slack", Category: data.CategoryCommunity, URL: "https://gophers.slack.com"},
		{Name: "Local meetup calendar", Category: data.CategoryCommunity, URL: "https://devcircle.org/calendar"},
	}, nil
}

func (s *Static) Presentations(context.Context) ([]data.Presentation, error) {
	return []data.Presentation{
		{Name: "Concurrency Patterns in Practice", Category: "talk", Author: "Mara Jansen", URL: "https://devcircle.org/talks/concurrency"},
		{Name: "Property-Based Testing From Scratch", Category: "talk", Author: "Tomas Ruiz", URL: "https://devcircle.org/talks/pbt"},
		{Name: "Lightning: My First Open Source PR", Category: "lightning", Author: "Sam Okafor", URL: ""},
		{Name: "Building a TUI in an Evening", Category: "workshop", Author: "Ines Malta", URL: "https://devcircle.org/talks/tui"},
	}, nil
}
