// Package reputation holds the point and badge rules applied when a contribution
// is recorded.
package reputation

import (
	"errors"
	"math"
	"sort"
)

const (
	// DefaultContributionPoints is substituted by callers when no amount is supplied.
	DefaultContributionPoints = 10

	// MaxPoints bounds a reputation total; totals are stored as 32-bit integers.
	MaxPoints = math.MaxInt32
)

var (
	ErrInvalidPoints  = errors.New("points earned must be positive")
	ErrPointsOverflow = errors.New("reputation total exceeds the maximum")
)

type Badge string

const (
	BadgeContributor Badge = "Contributor"
	BadgeExpert      Badge = "Expert"
	BadgeMaster      Badge = "Master"
)

type threshold struct {
	points int
	badge  Badge
}

var thresholds = []threshold{
	{points: 100, badge: BadgeContributor},
	{points: 500, badge: BadgeExpert},
	{points: 1000, badge: BadgeMaster},
}

// Threshold returns the points needed for b, or false for an unknown badge.
func Threshold(b Badge) (int, bool) {
	for _, t := range thresholds {
		if t.badge == b {
			return t.points, true
		}
	}
	return 0, false
}

type BadgeSet map[Badge]struct{}

func NewBadgeSet(badges ...Badge) BadgeSet {
	s := make(BadgeSet, len(badges))
	for _, b := range badges {
		s[b] = struct{}{}
	}
	return s
}

// ParseBadgeSet builds a set from stored names, dropping blanks and duplicates.
func ParseBadgeSet(names []string) BadgeSet {
	s := make(BadgeSet, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		s[Badge(n)] = struct{}{}
	}
	return s
}

func (s BadgeSet) Has(b Badge) bool {
	_, ok := s[b]
	return ok
}

func (s BadgeSet) Len() int {
	return len(s)
}

func (s BadgeSet) Clone() BadgeSet {
	out := make(BadgeSet, len(s))
	for b := range s {
		out[b] = struct{}{}
	}
	return out
}

// Union returns a new set holding the badges of s and other.
func (s BadgeSet) Union(other BadgeSet) BadgeSet {
	out := s.Clone()
	for b := range other {
		out[b] = struct{}{}
	}
	return out
}

// Strings returns the badge names ordered by threshold; badges outside the table
// follow alphabetically.
func (s BadgeSet) Strings() []string {
	out := make([]string, 0, len(s))
	for b := range s {
		out = append(out, string(b))
	}
	sort.Slice(out, func(i, j int) bool {
		ti, iok := Threshold(Badge(out[i]))
		tj, jok := Threshold(Badge(out[j]))
		switch {
		case iok && jok:
			return ti < tj
		case iok != jok:
			return iok
		default:
			return out[i] < out[j]
		}
	})
	return out
}

func (s BadgeSet) Equal(other BadgeSet) bool {
	if len(s) != len(other) {
		return false
	}
	for b := range s {
		if !other.Has(b) {
			return false
		}
	}
	return true
}

type Profile struct {
	Points int
	Badges BadgeSet
}

// BadgesFor returns every badge whose threshold is at most points.
func BadgesFor(points int) BadgeSet {
	out := make(BadgeSet, len(thresholds))
	for _, t := range thresholds {
		if points >= t.points {
			out[t.badge] = struct{}{}
		}
	}
	return out
}

// ApplyContribution adds pointsEarned to current and unions in every badge the new
// total has reached. Badges already held are kept. current is not modified.
// A total that would pass MaxPoints yields ErrPointsOverflow.
func ApplyContribution(current Profile, pointsEarned int) (Profile, error) {
	if pointsEarned <= 0 {
		return Profile{}, ErrInvalidPoints
	}

	newPoints := current.Points + pointsEarned
	if newPoints < current.Points || newPoints > MaxPoints {
		return Profile{}, ErrPointsOverflow
	}
	badges := current.Badges.Union(BadgesFor(newPoints))

	return Profile{Points: newPoints, Badges: badges}, nil
}

// Newly returns the badges in after that are absent from before.
func Newly(before, after BadgeSet) BadgeSet {
	out := make(BadgeSet)
	for b := range after {
		if !before.Has(b) {
			out[b] = struct{}{}
		}
	}
	return out
}
