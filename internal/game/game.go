package game

import "log"

const (
	KeyRecentScore = "RecentScore"
	KeyHighscore   = "Highscore"
)

// Game owns the running session and routes input and contacts to it. Once
// the session ends it is dropped, so later taps and contacts have nowhere to
// go.
type Game struct {
	session *Session
	store   Store
	nav     Navigator
	size    Size
}

func NewGame(s *Session, store Store, nav Navigator, size Size) *Game {
	return &Game{session: s, store: store, nav: nav, size: size}
}

// Session returns the running session, or nil once the game is over.
func (g *Game) Session() *Session { return g.session }

func (g *Game) Over() bool { return g.session == nil }

func (g *Game) Tap() {
	if g.session == nil {
		return
	}
	g.session.Tap()
}

// Contact resolves a contact-begin event from the world.
func (g *Game) Contact(a, b EntityID) Outcome {
	out := ResolveContact(g.session, a, b)
	if out == Mismatched {
		g.gameOver()
	}
	return out
}

func (g *Game) gameOver() {
	s := g.session
	if s == nil {
		return
	}
	g.session = nil

	high := RecordScore(g.store, s.score)
	log.Printf("game over: score=%d highscore=%d", s.score, high)
	if g.nav != nil {
		g.nav.PresentMenu(g.size)
	}
}

// RecordScore stores score as the recent score and as the high score when it
// beats the stored one. It returns the resulting high score.
func RecordScore(store Store, score int) int {
	if store == nil {
		return score
	}
	store.SetInt(KeyRecentScore, score)
	high := store.Int(KeyHighscore)
	if score > high {
		store.SetInt(KeyHighscore, score)
		high = score
	}
	return high
}
