package eater

// PlacePursuersOnPlayer moves every pursuer onto the player's cell.
func (s *Session) PlacePursuersOnPlayer() {
	for i := range s.pursuers {
		s.pursuers[i].Pos = s.player
	}
}
