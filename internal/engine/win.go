package engine

import "github.com/ericogr/gridstrike/internal/game"

// EvaluateWinner scans both players after a shot resolution. The first
// player found with zero live launchers loses and the opponent wins.
// Defenses never affect the outcome. over is false while both players can
// still fire.
func EvaluateWinner(players []*game.PlayerState) (winnerID string, over bool) {
	for i, p := range players {
		if p.LiveLaunchers() == 0 {
			return players[1-i].ID, true
		}
	}
	return "", false
}
