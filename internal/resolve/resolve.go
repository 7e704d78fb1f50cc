// Package resolve maps an imprecise caller input, a guessed file path or a
// free-text topic, to exactly one known node id.
//
// Resolution is an ordered chain of heuristics folded first-match-wins:
//
//  1. exact            input is a known id
//  2. case-insensitive lowercase lookup, first id wins on collision
//  3. extension-swap   .js<->.ts, .jsx<->.tsx, then exact / case-insensitive
//  4. basename         ids sharing the input's basename, ranked by common directory suffix
//  5. topic            substring / word / segment scoring over every id
//
// Topic inputs skip straight to step 5. Every heuristic is a pure function of
// its arguments, so Resolve is deterministic.
package resolve

// Heuristic is one step of the chain. It returns the matched id and true, or
// "" and false when it has nothing to offer.
type Heuristic struct {
	Name  string
	Match func(input string, ids []string) (string, bool)
}

// Heuristic names reported by ResolveMatch.
const (
	HeuristicExact           = "exact"
	HeuristicCaseInsensitive = "case-insensitive"
	HeuristicExtensionSwap   = "extension-swap"
	HeuristicBasename        = "basename"
	HeuristicTopic           = "topic"
)

// PathChain is the chain applied to path-like input.
var PathChain = []Heuristic{
	{Name: HeuristicExact, Match: Exact},
	{Name: HeuristicCaseInsensitive, Match: CaseInsensitive},
	{Name: HeuristicExtensionSwap, Match: ExtensionSwap},
	{Name: HeuristicBasename, Match: Basename},
	{Name: HeuristicTopic, Match: Topic},
}

// TopicChain is the chain applied to free-text topics.
var TopicChain = []Heuristic{
	{Name: HeuristicTopic, Match: Topic},
}

// Match is a successful resolution.
type Match struct {
	Input     string `json:"input"`
	ID        string `json:"id"`
	Heuristic string `json:"heuristic"`
}

// Resolve returns the node id input refers to, or "", false when the chain is
// exhausted.
func Resolve(input string, ids []string, isTopic bool) (string, bool) {
	m, ok := ResolveMatch(input, ids, isTopic)
	return m.ID, ok
}

// ResolveMatch is Resolve plus the name of the heuristic that matched.
func ResolveMatch(input string, ids []string, isTopic bool) (Match, bool) {
	chain := PathChain
	if isTopic {
		chain = TopicChain
	}
	return Fold(chain, input, ids)
}

// Fold runs chain in order and stops at the first heuristic that matches.
func Fold(chain []Heuristic, input string, ids []string) (Match, bool) {
	if input == "" || len(ids) == 0 {
		return Match{Input: input}, false
	}
	for _, h := range chain {
		if id, ok := h.Match(input, ids); ok {
			return Match{Input: input, ID: id, Heuristic: h.Name}, true
		}
	}
	return Match{Input: input}, false
}
