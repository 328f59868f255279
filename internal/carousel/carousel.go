// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package carousel models the hero slideshow as an explicit cancellable
// scheduled task. Auto-advance runs on a fixed interval; any manual
// navigation suspends autoplay for a cooldown window before it resumes.
package carousel

import (
	"sync"
	"time"
)

const (
	// DefaultInterval is the auto-advance period.
	DefaultInterval = 5 * time.Second

	// DefaultCooldown is how long autoplay stays suspended after a manual
	// navigation.
	DefaultCooldown = 10 * time.Second
)

// Slide is one hero panel.
type Slide struct {
	Title       string
	Highlight   string
	Description string
	Image       string
}

// DefaultSlides is the hero deck shown on the homepage.
var DefaultSlides = []Slide{
	{
		Title:       "Empowering Motherhood,",
		Highlight:   "Nurturing Families",
		Description: "Experience personalized, evidence-based midwifery care for pregnancy, birth and beyond.",
		Image:       "/static/img/hero1.svg",
	},
	{
		Title:       "Your Birth,",
		Highlight:   "Your Choice",
		Description: "Supporting natural births with compassionate care and expert guidance throughout your journey.",
		Image:       "/static/img/hero2.svg",
	},
	{
		Title:       "Holistic Care for",
		Highlight:   "Every Stage",
		Description: "From prenatal care to postpartum support, we're with you every step of the way.",
		Image:       "/static/img/hero3.svg",
	},
	{
		Title:       "Building Confidence,",
		Highlight:   "Creating Connections",
		Description: "Join our community of empowered mothers and receive 24/7 support from certified professionals.",
		Image:       "/static/img/hero4.svg",
	},
}

// Rotator cycles through a slide deck. Auto-advance ticks are applied only
// while autoplay is not suspended; Stop tears the timer down and no tick is
// applied afterwards. All methods are safe for concurrent use.
type Rotator struct {
	interval time.Duration
	cooldown time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once

	mu       sync.Mutex
	slides   []Slide
	current  int
	resumeAt time.Time // autoplay suspended until this instant
	stopped  bool
}

// New creates a rotator over slides and starts its auto-advance timer.
// Zero durations fall back to the defaults. Callers must Stop it when the
// deck is no longer displayed.
func New(slides []Slide, interval, cooldown time.Duration) *Rotator {
	if interval == 0 {
		interval = DefaultInterval
	}
	if cooldown == 0 {
		cooldown = DefaultCooldown
	}
	r := &Rotator{
		interval: interval,
		cooldown: cooldown,
		slides:   slides,
		stopCh:   make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case t := <-ticker.C:
				r.advanceIfAuto(t)
			case <-r.stopCh:
				return
			}
		}
	}()

	return r
}

// Stop cancels the auto-advance timer. Safe to call more than once.
func (r *Rotator) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
}

// Current returns the index and content of the slide on display.
func (r *Rotator) Current() (int, Slide) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.slides[r.current]
}

// Slides returns the full deck for rendering.
func (r *Rotator) Slides() []Slide {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slides
}

// Next advances to the following slide manually, suspending autoplay.
func (r *Rotator) Next() {
	r.manual(func() { r.current = (r.current + 1) % len(r.slides) })
}

// Prev steps back to the previous slide manually, suspending autoplay.
func (r *Rotator) Prev() {
	r.manual(func() { r.current = (r.current - 1 + len(r.slides)) % len(r.slides) })
}

// Go jumps to a slide by index manually, suspending autoplay. Out-of-range
// indices are ignored.
func (r *Rotator) Go(index int) {
	r.manual(func() {
		if index >= 0 && index < len(r.slides) {
			r.current = index
		}
	})
}

// manual applies a navigation and pushes the autoplay resume point out by
// the cooldown.
func (r *Rotator) manual(nav func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || len(r.slides) == 0 {
		return
	}
	nav()
	r.resumeAt = time.Now().Add(r.cooldown)
}

// advanceIfAuto applies one auto-advance tick observed at instant now.
// Ticks inside the post-manual cooldown window, or after Stop, are dropped.
func (r *Rotator) advanceIfAuto(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || len(r.slides) == 0 || now.Before(r.resumeAt) {
		return
	}
	r.current = (r.current + 1) % len(r.slides)
}
