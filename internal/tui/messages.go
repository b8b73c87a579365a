package tui

// storageReadyMsg reports the outcome of storage initialization at startup
type storageReadyMsg struct {
	err error
}
