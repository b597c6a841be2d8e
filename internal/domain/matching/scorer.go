package matching

import "strings"

// DefaultScore is returned when a project states no required skills.
const DefaultScore = 50

// SkillSet is a case-insensitive set of skill names.
type SkillSet map[string]struct{}

func NewSkillSet(names ...string) SkillSet {
	s := make(SkillSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func (s SkillSet) Add(name string) {
	s[normalize(name)] = struct{}{}
}

func (s SkillSet) Has(name string) bool {
	_, ok := s[normalize(name)]
	return ok
}

func (s SkillSet) Len() int {
	return len(s)
}

type Result struct {
	MatchScore    int
	MatchedSkills []string
	MissingSkills []string
}

// Score returns the percentage of required skills present in applicant, rounded
// half up. Required skills are counted per entry, so a repeated name weighs more.
func Score(required []string, applicant SkillSet) int {
	return Evaluate(required, applicant).MatchScore
}

// Evaluate scores required against applicant and reports which entries matched.
// Matched and missing lists keep the authored order and spelling of required.
func Evaluate(required []string, applicant SkillSet) Result {
	if len(required) == 0 {
		return Result{MatchScore: DefaultScore, MatchedSkills: []string{}, MissingSkills: []string{}}
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0)
	for _, r := range required {
		if applicant.Has(r) {
			matched = append(matched, r)
			continue
		}
		missing = append(missing, r)
	}

	return Result{
		MatchScore:    percentHalfUp(len(matched), len(required)),
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

// percentHalfUp computes round(n/d*100) without floating point so .5 always rounds up.
func percentHalfUp(n, d int) int {
	if d <= 0 {
		return DefaultScore
	}
	score := (200*n + d) / (2 * d)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func normalize(name string) string {
	return strings.ToLower(name)
}
