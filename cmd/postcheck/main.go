// Checks post sources without starting the UI: every post must parse, name
// a local audio file and declare usable clips.
package main

import (
	"context"
	"log"
	"os"

	"github.com/llehouerou/clipnotes/internal/clip"
	"github.com/llehouerou/clipnotes/internal/config"
	"github.com/llehouerou/clipnotes/internal/player"
	"github.com/llehouerou/clipnotes/internal/post"
	"github.com/llehouerou/clipnotes/internal/posts"
	"github.com/llehouerou/clipnotes/internal/timefmt"
)

func main() {
	log.SetFlags(0)

	sources := os.Args[1:]
	if len(sources) == 0 {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		sources = cfg.GetPostSources()
	}

	entries, err := posts.LoadAll(context.Background(), sources)
	if err != nil {
		log.Fatalf("Failed to load posts: %v", err)
	}
	log.Printf("Found %d posts in %d sources", len(entries), len(sources))

	problems := 0
	for _, e := range (posts.Query{}).Apply(entries) {
		problems += check(e)
	}

	if problems > 0 {
		log.Fatalf("\n%d problems found", problems)
	}
	log.Println("\nAll posts OK")
}

// check reports one post and returns the number of problems found.
func check(e posts.Entry) int {
	log.Printf("\n%s (%s, %s)", e.Title, e.Slug, posts.FormatDate(e.Date))

	path, err := e.Path()
	if err != nil {
		log.Printf("  ERROR: %v", err)
		return 1
	}
	doc, err := post.Load(path)
	if err != nil {
		log.Printf("  ERROR: %s: %v", path, err)
		return 1
	}

	problems := 0
	if !player.IsAudioFile(doc.Audio) {
		log.Printf("  ERROR: %s: %v", doc.Audio, player.ErrUnsupportedFormat)
		problems++
	} else if _, err := os.Stat(doc.Audio); err != nil {
		log.Printf("  ERROR: audio: %v", err)
		problems++
	} else if h := player.ReadTrackInfo(doc.Audio).Header(); h != "" {
		log.Printf("  audio: %s", h)
	}

	clips := clip.NewRegistry(doc.Sections)
	if clips.Len() == 0 {
		log.Println("  Warning: no timed sections")
	}
	for _, c := range clips.All() {
		span := timefmt.Duration(c.Start) + " - " + timefmt.Duration(c.End)
		switch {
		case !c.Bounded():
			log.Printf("  [%d] %-20s %s  Warning: no end, the snippet plays to the end of the track", c.Index+1, c.Label, span)
		case c.Degenerate():
			log.Printf("  [%d] %-20s %s  ERROR: ends before it starts", c.Index+1, c.Label, span)
			problems++
		default:
			log.Printf("  [%d] %-20s %s", c.Index+1, c.Label, span)
		}
	}
	return problems
}
