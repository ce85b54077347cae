package game

// Stats counts gameplay events since the game started.
type Stats struct {
	Spawned  int
	Dropped  int
	Merges   int
	Impacts  int
	Blasts   int
	MaxLevel int
	Live     int
}

func (s *Stats) observeLevel(level int) {
	if level > s.MaxLevel {
		s.MaxLevel = level
	}
}
