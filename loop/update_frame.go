package loop

type UpdateFrame struct {
	// DeltaTime is the scaled frame time in seconds.
	DeltaTime float64
	// Tick counts frames from 1.
	Tick     uint64
	Commands *Commands
}

func newUpdateFrame(dt float64, tick uint64, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Tick:      tick,
		Commands:  commands,
	}
}
