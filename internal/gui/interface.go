package gui

// Interface defines the contract for GUI operations
type Interface interface {
	Run() error
	ShowError(title string, err error)
	ShowInfo(message string)
}
