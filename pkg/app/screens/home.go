package screens

// HomeScreen has no body of its own; the home page is header chrome only.
type HomeScreen struct{}

func NewHomeScreen() *HomeScreen {
	return &HomeScreen{}
}

func (s *HomeScreen) View() string {
	return ""
}
